package submissions

import (
	"fmt"
	"strconv"
)

// SubmitProgramForm documents the multipart fields of the submit endpoint:
// "program" (file, required), "timeoutMs" (optional), "userId" (optional).
type SubmitProgramForm struct {
	TimeoutMs int    `json:"timeoutMs"`
	UserID    string `json:"userId"`
}

func parsePositiveInt(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("value must be positive: %d", v)
	}
	return v, nil
}
