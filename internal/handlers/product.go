package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/dojodoskages/storefront/internal/logging"
	"github.com/dojodoskages/storefront/internal/models"
	"github.com/dojodoskages/storefront/internal/repo"
	"github.com/dojodoskages/storefront/internal/validate"
)

type ProductHandler struct {
	Catalog *repo.Catalog
}

type productRequest struct {
	Name        string   `json:"name"`
	Collection  string   `json:"collection"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
}

func runeLen(s string) int { return utf8.RuneCountInString(strings.TrimSpace(s)) }

func validateProduct(req productRequest) validate.Errors {
	var errs validate.Errors
	if n := runeLen(req.Name); n < 2 || n > 100 {
		errs = append(errs, validate.FieldError{Field: "name", Message: "Nome obrigatório"})
	}
	if n := runeLen(req.Collection); n < 2 || n > 50 {
		errs = append(errs, validate.FieldError{Field: "collection", Message: "Coleção obrigatória"})
	}
	if req.PriceCents <= 0 {
		errs = append(errs, validate.FieldError{Field: "price_cents", Message: "Preço deve ser positivo"})
	}
	if n := runeLen(req.Description); n < 10 || n > 500 {
		errs = append(errs, validate.FieldError{Field: "description", Message: "Descrição muito curta"})
	}
	if len(req.Sizes) == 0 {
		errs = append(errs, validate.FieldError{Field: "sizes", Message: "Informe os tamanhos"})
	}
	if len(req.Images) == 0 {
		errs = append(errs, validate.FieldError{Field: "images", Message: "Informe as URLs das imagens"})
	}
	return errs
}

func validationResponse(c echo.Context, errs validate.Errors) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs.Map()})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if errs := validateProduct(req); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	prod := models.Product{
		Name:        strings.TrimSpace(req.Name),
		Collection:  strings.TrimSpace(req.Collection),
		Description: strings.TrimSpace(req.Description),
		PriceCents:  req.PriceCents,
		Sizes:       req.Sizes,
		Images:      req.Images,
	}

	created, err := h.Catalog.Create(ctx, &prod)
	if err != nil {
		l.Error("create_product_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create product")
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch")

	id := c.Param("id")

	var patch repo.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if errs := validatePatch(patch); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	prod, found, err := h.Catalog.Patch(ctx, id, patch)
	if err != nil {
		l.Error("patch_product_failed", "productID", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product")
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	return c.JSON(http.StatusOK, prod)
}

// validatePatch applies the create rules, but only to fields present in
// the request.
func validatePatch(patch repo.ProductPatch) validate.Errors {
	var errs validate.Errors
	if patch.Name != nil {
		if n := runeLen(*patch.Name); n < 2 || n > 100 {
			errs = append(errs, validate.FieldError{Field: "name", Message: "Nome obrigatório"})
		}
	}
	if patch.Collection != nil {
		if n := runeLen(*patch.Collection); n < 2 || n > 50 {
			errs = append(errs, validate.FieldError{Field: "collection", Message: "Coleção obrigatória"})
		}
	}
	if patch.PriceCents != nil && *patch.PriceCents <= 0 {
		errs = append(errs, validate.FieldError{Field: "price_cents", Message: "Preço deve ser positivo"})
	}
	if patch.Description != nil {
		if n := runeLen(*patch.Description); n < 10 || n > 500 {
			errs = append(errs, validate.FieldError{Field: "description", Message: "Descrição muito curta"})
		}
	}
	if patch.Sizes != nil && len(*patch.Sizes) == 0 {
		errs = append(errs, validate.FieldError{Field: "sizes", Message: "Informe os tamanhos"})
	}
	if patch.Images != nil && len(*patch.Images) == 0 {
		errs = append(errs, validate.FieldError{Field: "images", Message: "Informe as URLs das imagens"})
	}
	return errs
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id := c.Param("id")

	// deleting an absent id is a silent no-op
	if _, err := h.Catalog.Delete(ctx, id); err != nil {
		l.Error("delete_product_failed", "productID", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	prod, err := h.Catalog.Get(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	items, err := h.Catalog.List(ctx, c.QueryParam("collection"))
	if err != nil {
		l.Error("list_products_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	return c.JSON(http.StatusOK, echo.Map{"data": items})
}

func (h *ProductHandler) GetCollections(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.collections")

	names, err := h.Catalog.Collections(ctx)
	if err != nil {
		l.Error("list_collections_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list collections")
	}

	return c.JSON(http.StatusOK, echo.Map{"data": names})
}
