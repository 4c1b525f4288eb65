package handlers

import (
	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	FullName      *string `json:"full_name"`
	ProfilePicURL *string `json:"profile_pic_url"`
}

func GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Preload("Profile").Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Preload("Profile").Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	database.DB.Save(&user)

	if req.ProfilePicURL != nil {
		if user.Profile == nil {
			profile := models.StudentProfile{UserID: user.ID, ProfilePicURL: req.ProfilePicURL}
			database.DB.Create(&profile)
			user.Profile = &profile
		} else {
			user.Profile.ProfilePicURL = req.ProfilePicURL
			database.DB.Save(user.Profile)
		}
	}

	return c.JSON(user)
}
