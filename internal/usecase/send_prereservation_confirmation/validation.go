package send_prereservation_confirmation

import (
	"fmt"
	"net/mail"
	"strings"
)

func validateRequest(req *Request) error {
	if req.ID == "" {
		return fmt.Errorf("%w: pre-reservation id is required", ErrIncompleteData)
	}
	if strings.TrimSpace(req.Notice.Recipient) == "" || len(req.Notice.Screens) == 0 {
		return fmt.Errorf("%w: recipient and screens are required", ErrIncompleteData)
	}
	if _, err := mail.ParseAddress(req.Notice.Recipient); err != nil {
		return fmt.Errorf("%w: recipient: %v", ErrIncompleteData, err)
	}
	if req.Notice.Weeks < 0 {
		return fmt.Errorf("%w: negative duration", ErrIncompleteData)
	}
	return nil
}
