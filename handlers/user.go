package handlers

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pratishelar/realtor-sub000/config"
	"github.com/pratishelar/realtor-sub000/models"
	"github.com/pratishelar/realtor-sub000/utils"
)

type UserController struct {
	collection *mongo.Collection
}

func NewUserController() *UserController {
	collectionName := os.Getenv("MONGODB_COLLECTION_USERS")
	if collectionName == "" {
		collectionName = "users"
	}
	return &UserController{
		collection: config.GetCollection(collectionName),
	}
}

// roleForEmail grants the admin role to addresses listed in ADMIN_EMAILS.
func roleForEmail(email string) string {
	for _, admin := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if admin != "" && strings.EqualFold(strings.TrimSpace(admin), email) {
			return "admin"
		}
	}
	return "user"
}

func (uc *UserController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if !utils.IsValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid email address",
		})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Password must be at least 6 characters",
		})
	}

	var existingUser models.User
	err := uc.collection.FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&existingUser)
	if err == nil {
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "User with this email already exists",
		})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Password:  hashedPassword,
		Name:      req.Name,
		Phone:     req.Phone,
		Role:      roleForEmail(req.Email),
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := uc.collection.InsertOne(context.Background(), user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create user",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate token",
		})
	}

	user.Password = ""

	return c.JSON(http.StatusCreated, models.LoginResponse{
		Token: token,
		User:  user,
	})
}

func (uc *UserController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	var user models.User
	err := uc.collection.FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid email or password",
		})
	}

	if !user.IsActive {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Account is deactivated",
		})
	}

	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid email or password",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate token",
		})
	}

	user.Password = ""

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  user,
	})
}

func (uc *UserController) GetProfile(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var user models.User
	err := uc.collection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "User not found",
		})
	}

	user.Password = ""

	return c.JSON(http.StatusOK, user)
}
