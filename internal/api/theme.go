package api

import (
	"encoding/base64" // Image payload encoding
	"io"
	"net/http" // HTTP status codes and client
	"time"

	"github.com/gin-gonic/gin" // Gin web framework
)

// themeClient bounds the background fetch; the page must not hang on a slow
// image host.
var themeClient = &http.Client{Timeout: 10 * time.Second}

// BackgroundHandler fetches the configured background image and returns it
// base64-encoded for inline CSS. Any failure or non-200 degrades to an empty
// string so the page renders without a background.
func BackgroundHandler(imgURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if imgURL == "" {
			c.JSON(http.StatusOK, gin.H{"image_base64": ""})
			return
		}
		resp, err := themeClient.Get(imgURL)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"image_base64": ""})
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			c.JSON(http.StatusOK, gin.H{"image_base64": ""})
			return
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"image_base64": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"image_base64": base64.StdEncoding.EncodeToString(body)})
	}
}
