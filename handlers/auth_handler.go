package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub uint, role, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

type registerReq struct {
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	StudentID string `json:"student_id" validate:"required,max=20"`
	MajorID   uint   `json:"major_id" validate:"required"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	if fields := validateStruct(&req); fields != nil {
		return respondValidation(c, fields)
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return respondValidation(c, map[string]string{"email": "email already registered"})
	}

	var major models.Major
	if err := database.DB.First(&major, req.MajorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondValidation(c, map[string]string{"major_id": "unknown major"})
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     "student",
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student := models.Student{
			StudentID:    req.StudentID,
			UserID:       user.ID,
			MajorID:      major.ID,
			Name:         req.Name,
			Email:        req.Email,
			YearLevel:    1,
			TotalCredits: major.TotalCreditsRequired,
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	token, err := h.signJWT(user.ID, user.Role, user.Name, 24*time.Hour)
	if err != nil {
		return err
	}
	return respondCreated(c, "Registration successful", map[string]any{
		"user":  user,
		"token": token,
	})
}

// POST /api/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	if fields := validateStruct(&req); fields != nil {
		return respondValidation(c, fields)
	}

	var user models.User
	err := database.DB.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.signJWT(user.ID, user.Role, user.Name, 24*time.Hour)
	if err != nil {
		return err
	}
	return respondOK(c, map[string]any{
		"user":  user,
		"token": token,
	})
}

// POST /api/logout — tokens are stateless, the client just drops its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	return respondMessage(c, "Logged out")
}

// GET /api/user
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _ := c.Get("user_id").(uint)
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, http.StatusNotFound, "User not found")
		}
		return err
	}
	return respondOK(c, user)
}
