package middleware

import "github.com/gin-gonic/gin"

// subjectKey is the key used to store the authenticated token subject in the Gin context.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated token subject from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	if subject, exists := c.Get(string(subjectKey)); exists {
		s, ok := subject.(string)
		return s, ok
	}
	// check in the request context as well
	if subject, ok := c.Request.Context().Value(subjectKey).(string); ok {
		return subject, true
	}
	return "", false
}
