package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

type SuccessResponse struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Meta    *Meta `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Timestamp time.Time `json:"timestamp"`
}

func CreateErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: APIError{
			Code:    code,
			Message: message,
		},
	}
}

func CreateSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Timestamp: time.Now(),
		},
	}
}

// GenerateEntityID builds ids like "prod_9f86d081a2b4" or "DEV-9F86D081".
// prefix is joined with a random hex token; upper forces the token to
// upper-case (used for document ids).
func GenerateEntityID(prefix string, tokenLen int, upper bool) string {
	b := make([]byte, (tokenLen+1)/2)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back to time
		return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
	}
	token := hex.EncodeToString(b)[:tokenLen]
	if upper {
		token = strings.ToUpper(token)
	}
	return prefix + token
}

// GenerateRandomStringWithLength returns an upper-case alphanumeric token,
// used for promo codes.
func GenerateRandomStringWithLength(length int) string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return strings.ToUpper(hex.EncodeToString([]byte(fmt.Sprint(time.Now().UnixNano()))))[:length]
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

func ValidateEmail(email string) (bool, error) {
	if !emailRegex.MatchString(email) {
		return false, fmt.Errorf("error: email format incorrect")
	}
	return true, nil
}

// ValidatePhone accepts Senegalese mobile/landline numbers in international
// or domestic form.
func ValidatePhone(phone string) (bool, error) {
	cleaned := strings.ReplaceAll(phone, " ", "")
	patterns := []string{
		`^\+221(7[05678]|33)\d{7}$`, // +221 + mobile or landline
		`^221(7[05678]|33)\d{7}$`,   // 221 without +
		`^(7[05678]|33)\d{7}$`,      // domestic format
	}
	for _, pattern := range patterns {
		if matched, _ := regexp.MatchString(pattern, cleaned); matched {
			return true, nil
		}
	}
	return false, fmt.Errorf("phone format incorrect")
}
