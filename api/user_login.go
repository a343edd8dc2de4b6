package api

import (
	"net/http"

	"parasport/games-api/model"
	"parasport/games-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// The same body for a missing user and a wrong password, a caller must
// not be able to tell which one it was
const badCredentials = "Incorrect email or password"

// UserLogin verifies credentials and hands out a signed bearer token
// together with the user's ID. Missing fields are a 401 rather than a
// 400 so probing requests learn nothing about what was wrong.
func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     "Missing email or password",
			"requestID": requestID,
		})
		return
	}

	if data.Email == "" || data.Password == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     "Missing email or password",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     badCredentials,
			"requestID": requestID,
		})
		return
	}

	ok, err := a.Argon.VerifyPasswd(data.Password, user.PasswordHash)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     badCredentials,
			"requestID": requestID,
		})
		return
	}

	token, err := security.MakeAuthToken(user.ID, a.Auth.Secret, a.Auth.TokenTTL)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate auth token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id": user.ID,
		"token":   token,
	})
}
