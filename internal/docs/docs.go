// Package docs holds the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "catalog"
                ],
                "summary": "Catalog summary",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Counts"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/authors": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "List authors",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.Author"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/author/{id}": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Get author by ID",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Author"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/author/create": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Empty author form",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Create author",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "400": {
                        "description": "Form re-displayed with errors"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/x-www-form-urlencoded",
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "first_name",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "family_name",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "date_of_birth",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "date_of_death",
                        "in": "formData",
                        "required": false
                    }
                ]
            }
        },
        "/author/{id}/update": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Filled author form",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Update author",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "400": {
                        "description": "Form re-displayed with errors"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/x-www-form-urlencoded",
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "first_name",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "family_name",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "date_of_birth",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "date_of_death",
                        "in": "formData",
                        "required": false
                    }
                ]
            }
        },
        "/author/{id}/delete": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Confirm author delete",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Delete author",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "409": {
                        "description": "Dependents exist",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/genres": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "List genres",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.GenreView"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/genre/{id}": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Get genre by ID",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GenreView"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/genre/create": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Empty genre form",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Create genre",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "400": {
                        "description": "Form re-displayed with errors"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/x-www-form-urlencoded",
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "name",
                        "in": "formData",
                        "required": true
                    }
                ]
            }
        },
        "/genre/{id}/update": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Filled genre form",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Update genre",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "400": {
                        "description": "Form re-displayed with errors"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/x-www-form-urlencoded",
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "name",
                        "in": "formData",
                        "required": true
                    }
                ]
            }
        },
        "/genre/{id}/delete": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Confirm genre delete",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Delete genre",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "409": {
                        "description": "Dependents exist",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/books": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "List books",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.BookListItem"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/book/{id}": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Get book by ID",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Book"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/book/create": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Empty book form",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Create book",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "400": {
                        "description": "Form re-displayed with errors"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/x-www-form-urlencoded",
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "title",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "author",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "summary",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "isbn",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "name": "genre",
                        "in": "formData"
                    }
                ]
            }
        },
        "/book/{id}/update": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Filled book form",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Update book",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "400": {
                        "description": "Form re-displayed with errors"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/x-www-form-urlencoded",
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "title",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "author",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "summary",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "isbn",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "name": "genre",
                        "in": "formData"
                    }
                ]
            }
        },
        "/book/{id}/delete": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Confirm book delete",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Delete book",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "409": {
                        "description": "Dependents exist",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/bookinstances": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "List bookinstances",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.BookInstanceView"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bookinstance/{id}": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Get bookinstance by ID",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BookInstanceView"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/bookinstance/create": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Empty bookinstance form",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Create bookinstance",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "400": {
                        "description": "Form re-displayed with errors"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/x-www-form-urlencoded",
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "book",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "imprint",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "status",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "due_back",
                        "in": "formData",
                        "required": false
                    }
                ]
            }
        },
        "/bookinstance/{id}/update": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Filled bookinstance form",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Update bookinstance",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "400": {
                        "description": "Form re-displayed with errors"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/x-www-form-urlencoded",
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "book",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "imprint",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "status",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "due_back",
                        "in": "formData",
                        "required": false
                    }
                ]
            }
        },
        "/bookinstance/{id}/delete": {
            "get": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Confirm bookinstance delete",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "post": {
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Delete bookinstance",
                "responses": {
                    "302": {
                        "description": "Redirect to the record or list"
                    },
                    "409": {
                        "description": "Dependents exist",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        }
    },
    "definitions": {
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "rule": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "validation.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/validation.FieldError"
                    }
                }
            }
        },
        "handler.Counts": {
            "type": "object",
            "properties": {
                "book_count": {
                    "type": "integer"
                },
                "book_instance_count": {
                    "type": "integer"
                },
                "book_instance_available_count": {
                    "type": "integer"
                },
                "author_count": {
                    "type": "integer"
                },
                "genre_count": {
                    "type": "integer"
                }
            }
        },
        "handler.AuthorSummary": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "handler.Author": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "family_name": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "lifespan": {
                    "type": "string"
                },
                "date_of_birth": {
                    "type": "string",
                    "example": "1920-01-02"
                },
                "date_of_death": {
                    "type": "string",
                    "example": "1992-04-06"
                },
                "date_of_birth_formatted": {
                    "type": "string"
                },
                "date_of_death_formatted": {
                    "type": "string"
                }
            }
        },
        "handler.GenreView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "handler.BookSummary": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                }
            }
        },
        "handler.BookListItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "author": {
                    "$ref": "#/definitions/handler.AuthorSummary"
                }
            }
        },
        "handler.Book": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                },
                "isbn": {
                    "type": "string"
                },
                "author": {
                    "$ref": "#/definitions/handler.AuthorSummary"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.GenreView"
                    }
                }
            }
        },
        "handler.BookInstanceView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "imprint": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Available",
                        "Maintenance",
                        "Loaned",
                        "Reserved"
                    ]
                },
                "due_back": {
                    "type": "string",
                    "example": "2026-11-01"
                },
                "due_back_formatted": {
                    "type": "string"
                },
                "due_back_relative": {
                    "type": "string"
                },
                "book": {
                    "$ref": "#/definitions/handler.BookSummary"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/catalog",
	Schemes:          []string{},
	Title:            "Local Library Catalog",
	Description:      "Authors, books, genres and book copies of a small lending library.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
