package hold_slot

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newHoldToken генерирует уникальный opaque-токен hold'а.
// Монотонная часть (unix millis) + случайная (uuid v4) —
// неугадываем и уникален между конкурентными запросами.
func newHoldToken(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("hold_%d_%s", now.UnixMilli(), random)
}

// newMockHoldToken токен синтетического hold'а для degraded mode,
// суффикс MOCK позволяет отличать его в логах downstream-шагов
func newMockHoldToken(now time.Time) string {
	return fmt.Sprintf("hold_%d_MOCK", now.UnixMilli())
}
