package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"path/filepath"
	"sehatnama-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateRecordID returns the public identifier for every non-patient record.
func GenerateRecordID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func FormatPatientID(seq int64) string {
	return fmt.Sprintf(constvars.PatientIDFormat, seq)
}

// GenerateRandomPassword builds a password that satisfies the "password" validation tag.
func GenerateRandomPassword(length int) (string, error) {
	const (
		lower   = "abcdefghijkmnopqrstuvwxyz"
		upper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
		digits  = "23456789"
		special = "!@#$%^&*"
	)
	if length < 8 {
		length = 8
	}

	pools := []string{upper, special, digits}
	all := lower + upper + digits + special
	password := make([]byte, 0, length)
	for _, pool := range pools {
		char, err := randomChar(pool)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}
	for len(password) < length {
		char, err := randomChar(all)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}
	return string(password), nil
}

func randomChar(pool string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return 0, err
	}
	return pool[n.Int64()], nil
}

// BuildObjectName places an upload under its namespace with a unique,
// filesystem-safe name that keeps the original extension.
func BuildObjectName(namespace, filenameHint string) string {
	extension := strings.ToLower(filepath.Ext(filenameHint))
	return fmt.Sprintf("%s/%s%s", namespace, uuid.NewString(), extension)
}
