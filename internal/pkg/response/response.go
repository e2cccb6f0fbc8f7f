package response

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Data writes a single-resource envelope: {"data": ...}.
func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"data": data,
	})
}

// Paginated writes a collection envelope with meta and links, matching the
// public listing contract: {"data": [...], "meta": {...}, "links": {...}}.
func Paginated(c *gin.Context, data interface{}, total int64, page, perPage int) {
	lastPage := int(total+int64(perPage)-1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	links := gin.H{
		"first": pageURL(c.Request.URL, 1),
		"last":  pageURL(c.Request.URL, lastPage),
		"prev":  nil,
		"next":  nil,
	}
	if page > 1 {
		links["prev"] = pageURL(c.Request.URL, page-1)
	}
	if page < lastPage {
		links["next"] = pageURL(c.Request.URL, page+1)
	}

	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": gin.H{
			"current_page": page,
			"per_page":     perPage,
			"total":        total,
			"last_page":    lastPage,
		},
		"links": links,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ValidationFailed writes a 422 with per-field messages.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error": gin.H{
			"code":    "VALIDATION_FAILED",
			"message": "The given data was invalid",
			"errors":  fields,
		},
	})
}

func pageURL(u *url.URL, page int) string {
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	return fmt.Sprintf("%s?%s", u.Path, q.Encode())
}
