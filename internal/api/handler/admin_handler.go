package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

// AdminHandler serves the dashboard and moderation endpoints. Everything but
// Login sits behind the Auth + AdminOnly middleware pair.
type AdminHandler struct {
	authService  ports.AuthService
	adminService ports.AdminService
}

func NewAdminHandler(authService ports.AuthService, adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{authService: authService, adminService: adminService}
}

type adminLoginResponse struct {
	Token string       `json:"token"`
	Admin adminProfile `json:"admin"`
}

type adminProfile struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type statsTotals struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalProducts   int64 `json:"totalProducts"`
	TotalCategories int   `json:"totalCategories"`
}

// categoryCountRow keeps the original dashboard's aggregation shape, where
// the category name rides in "_id".
type categoryCountRow struct {
	Category string `json:"_id"`
	Count    int    `json:"count"`
}

type trendRow struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

type statsResponse struct {
	Stats             statsTotals        `json:"stats"`
	RecentUsers       []*domain.User     `json:"recentUsers"`
	RecentProducts    []*domain.Product  `json:"recentProducts"`
	CategoryStats     []categoryCountRow `json:"categoryStats"`
	RegistrationTrend []trendRow         `json:"userRegistrationTrend"`
}

// Login handles POST /api/admin/login. The admin is an ordinary seeded user
// record with the admin role; credentials go through the standard bcrypt
// check.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  adminLoginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminLoginResponse{
		Token: token,
		Admin: adminProfile{Email: user.Email, Role: user.Role},
	})
}

// Stats handles GET /api/admin/stats — the full dashboard payload.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	categoryStats := make([]categoryCountRow, len(stats.CategoryStats))
	for i, cc := range stats.CategoryStats {
		categoryStats[i] = categoryCountRow{Category: cc.Category, Count: cc.Count}
	}
	trend := make([]trendRow, len(stats.RegistrationTrend))
	for i, m := range stats.RegistrationTrend {
		trend[i] = trendRow{Month: m.Month, Users: m.Users}
	}

	return c.JSON(http.StatusOK, statsResponse{
		Stats: statsTotals{
			TotalUsers:      stats.Totals.TotalUsers,
			TotalProducts:   stats.Totals.TotalProducts,
			TotalCategories: stats.Totals.TotalCategories,
		},
		RecentUsers:       stats.RecentUsers,
		RecentProducts:    stats.RecentProducts,
		CategoryStats:     categoryStats,
		RegistrationTrend: trend,
	})
}

// Users handles GET /api/admin/users — every account, password stripped.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Products handles GET /api/admin/products.
//
// @Summary      List all products
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/products [get]
func (h *AdminHandler) Products(c echo.Context) error {
	products, err := h.adminService.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyIfNil(products))
}

// DeleteUser handles DELETE /api/admin/users/:id.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

// DeleteProduct handles DELETE /api/admin/products/:id.
//
// @Summary      Delete a product
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.adminService.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
