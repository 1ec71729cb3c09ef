package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

// ProfileHandler serves the authenticated user's own account.
type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// profileResponse deliberately renders phone as "" and profileImage as null
// when unset; the storefront relies on both.
type profileResponse struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	ProfileImage *string `json:"profileImage"`
}

type updatedProfileResponse struct {
	Message string             `json:"message"`
	User    updatedProfileUser `json:"user"`
}

type updatedProfileUser struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	ProfileImage *string `json:"profileImage"`
}

// Get handles GET /api/profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileService.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		ProfileImage: nullableImage(user),
	})
}

// Update handles PUT /api/profile — multipart, all fields optional.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name          formData  string  false  "Display name"
// @Param        email         formData  string  false  "Email"
// @Param        phone         formData  string  false  "Phone"
// @Param        profileImage  formData  file    false  "Profile picture"
// @Success      200  {object}  updatedProfileResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	input := ports.UpdateProfileInput{}
	if v, ok := formValue(form, "name"); ok && v != "" {
		input.Name = &v
	}
	if v, ok := formValue(form, "email"); ok && v != "" {
		input.Email = &v
	}
	// Phone is the one field that may be explicitly cleared to "".
	if v, ok := formValue(form, "phone"); ok {
		input.Phone = &v
	}

	upload, file, err := formImage(c, "profileImage")
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
		input.Image = upload
	}

	user, err := h.profileService.Update(c.Request().Context(), userID, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updatedProfileResponse{
		Message: "Profile updated successfully",
		User: updatedProfileUser{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Phone:        user.Phone,
			ProfileImage: nullableImage(user),
		},
	})
}

func formValue(form *multipart.Form, field string) (string, bool) {
	values, ok := form.Value[field]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func nullableImage(user *domain.User) *string {
	if user.ProfileImage == "" {
		return nil
	}
	img := user.ProfileImage
	return &img
}
