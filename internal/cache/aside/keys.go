package aside

import "github.com/google/uuid"

// Соглашение о ключах кэша: "<entity>:<id>".
// Снимок клиента и его уровень риска живут в двух независимых строках.

func UserKey(id uuid.UUID) string     { return "user:" + id.String() }
func ProductKey(id uuid.UUID) string  { return "product:" + id.String() }
func CustomerKey(id uuid.UUID) string { return "customer:" + id.String() }
func RiskKey(id uuid.UUID) string     { return "risk:" + id.String() }
