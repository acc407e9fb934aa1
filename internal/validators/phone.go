package validators

import (
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
)

const MaxPhoneLen = 32

// NormalizePhone trims the phone input. It rejects what the page's input
// element would not submit: an empty value or one longer than maxlength.
func NormalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", httperr.ErrBusinessMsg("invalid_phone", notify.MsgPhoneRequired)
	}
	if len(phone) > MaxPhoneLen {
		return "", httperr.ErrBusinessMsg("invalid_phone", "Phone number is too long.")
	}
	return phone, nil
}
