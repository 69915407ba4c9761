package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	"hackathon-catalog.backend/internal/interfaces/http/response"
	"hackathon-catalog.backend/internal/usecases"
)

// CatalogService is the usecase surface behind one catalog resource.
type CatalogService[T any] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id int64) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int64, patch usecases.Patch[T]) (T, error)
	Delete(ctx context.Context, id int64) error
}

// codec turns request payloads into entities and patches for one kind.
type codec[T any] struct {
	decodeCreate func(payload) (T, error)
	decodePatch  func(payload) (usecases.Patch[T], error)
}

// CatalogHandler serves GET, POST, PUT and DELETE for one catalog resource.
type CatalogHandler[T any] struct {
	svc   CatalogService[T]
	codec codec[T]
}

// Get returns one entity (or null) when ?id is given, else the full list.
func (h *CatalogHandler[T]) Get(c *gin.Context) {
	ctx := c.Request.Context()
	if raw, ok := c.GetQuery("id"); ok {
		id, err := parseQueryID(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		item, err := h.svc.GetByID(ctx, id)
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Success(c, http.StatusOK, nil)
			return
		}
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, item)
		return
	}

	items, err := h.svc.List(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	response.Success(c, http.StatusOK, items)
}

func (h *CatalogHandler[T]) Create(c *gin.Context) {
	p, err := readPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	entity, err := h.codec.decodeCreate(p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Mutation(c, h.svc.Create(c.Request.Context(), entity), nil)
}

func (h *CatalogHandler[T]) Update(c *gin.Context) {
	p, err := readPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := requireID(p)
	if err != nil {
		response.Error(c, err)
		return
	}
	patch, err := h.codec.decodePatch(p)
	if err != nil {
		response.Error(c, err)
		return
	}
	_, err = h.svc.Update(c.Request.Context(), id, patch)
	response.Mutation(c, err, nil)
}

func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	p, err := readPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := requireID(p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Mutation(c, h.svc.Delete(c.Request.Context(), id), nil)
}

func parseQueryID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domainerrors.Validation("id debe ser un número entero")
	}
	return id, nil
}
