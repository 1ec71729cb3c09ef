package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

// ProductHandler handles listing creation and the public browse endpoints.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// addProductRequest binds the multipart form fields; the image file is read
// separately. Price arrives as a form string and is parsed by the handler.
type addProductRequest struct {
	Name        string `form:"name"        validate:"required"`
	Category    string `form:"category"    validate:"required"`
	Price       string `form:"price"       validate:"required"`
	Description string `form:"description"`
	Phone       string `form:"phone"`
	Email       string `form:"email"`
}

type addProductResponse struct {
	Message   string          `json:"message"`
	ProductID string          `json:"productId"`
	Product   *domain.Product `json:"product"`
}

// Add handles POST /api/products/add.
//
// @Summary      Create a listing
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Product name"
// @Param        category     formData  string  true   "Category"
// @Param        price        formData  number  true   "Price"
// @Param        description  formData  string  false  "Description"
// @Param        phone        formData  string  false  "Seller contact phone"
// @Param        email        formData  string  false  "Seller contact email"
// @Param        image        formData  file    false  "Product image"
// @Success      201  {object}  addProductResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/products/add [post]
func (h *ProductHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, category, and price are required")
	}

	price, err := strconv.ParseFloat(req.Price, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be a number")
	}
	if price < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}

	upload, file, err := formImage(c, "image")
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	product, err := h.productService.Add(c.Request().Context(), ports.AddProductInput{
		Name:         req.Name,
		Category:     req.Category,
		Price:        price,
		Description:  req.Description,
		SellerID:     userID,
		ContactEmail: req.Email,
		ContactPhone: req.Phone,
		Image:        upload,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, addProductResponse{
		Message:   "Product added successfully",
		ProductID: product.ID,
		Product:   product,
	})
}

// ListAll handles GET /api/products/all — every listing, newest first.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products/all [get]
func (h *ProductHandler) ListAll(c echo.Context) error {
	products, err := h.productService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyIfNil(products))
}

// ListByCategory handles GET /api/products/category/:category.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        category  path  string  true  "Category name"
// @Success      200  {array}  domain.Product
// @Router       /api/products/category/{category} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.productService.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyIfNil(products))
}

// ListMine handles GET /api/products/my-products — the caller's listings.
//
// @Summary      List own products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Failure      401  {object}  messageResponse
// @Router       /api/products/my-products [get]
func (h *ProductHandler) ListMine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	products, err := h.productService.ListBySeller(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyIfNil(products))
}

// emptyIfNil keeps list endpoints returning [] instead of null.
func emptyIfNil(products []*domain.Product) []*domain.Product {
	if products == nil {
		return []*domain.Product{}
	}
	return products
}
