package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderNumber membuat nomor order pendek yang mudah dibaca,
// mis. "ORD-3FA85F64". Keunikan dijamin oleh unique constraint di kolom
// order_number; token acak 8 hex praktis bebas tabrakan.
func GenerateOrderNumber() string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("ORD-%s", strings.ToUpper(token))
}
