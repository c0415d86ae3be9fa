package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/parallel"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type Counts struct {
	Books              int64 `json:"book_count"`
	BookInstances      int64 `json:"book_instance_count"`
	AvailableInstances int64 `json:"book_instance_available_count"`
	Authors            int64 `json:"author_count"`
	Genres             int64 `json:"genre_count"`
}

type CatalogHandler struct {
	stores *repository.Stores
}

func NewCatalogHandler(stores *repository.Stores) *CatalogHandler {
	return &CatalogHandler{stores: stores}
}

// Register mounts every catalog page under /catalog and redirects the site
// root to it.
func Register(r *gin.Engine, stores *repository.Stores) {
	v := validation.New()

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})

	catalog := r.Group("/catalog")
	NewCatalogHandler(stores).RegisterRoutes(catalog)
	NewAuthorHandler(stores, v).RegisterRoutes(catalog)
	NewGenreHandler(stores, v).RegisterRoutes(catalog)
	NewBookHandler(stores, v).RegisterRoutes(catalog)
	NewBookInstanceHandler(stores, v).RegisterRoutes(catalog)
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.Index)
	r.GET("/", h.Index)
}

func count[T any](dst *int64, s repository.Store[T], opts ...repository.Option) parallel.Op {
	return parallel.Into(dst, func(ctx context.Context) (int64, error) {
		return s.Count(ctx, opts...)
	})
}

// Index godoc
// @Summary      Catalog summary
// @Description  Record counts for the site home page
// @Tags         catalog
// @Produce      html,json
// @Success      200  {object}  Counts
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       / [get]
func (h *CatalogHandler) Index(c *gin.Context) {
	var n Counts

	err := parallel.Run(c.Request.Context(),
		count(&n.Books, h.stores.Books),
		count(&n.BookInstances, h.stores.Instances),
		count(&n.AvailableInstances, h.stores.Instances, repository.Where("status = ?", model.StatusAvailable)),
		count(&n.Authors, h.stores.Authors),
		count(&n.Genres, h.stores.Genres),
	)
	if err != nil {
		fail(c, "Catalog", err)
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"title":  "Local Library Home",
		"counts": n,
	})
}
