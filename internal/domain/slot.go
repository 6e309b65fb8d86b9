package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rawTimePattern matches H:MM, HH:MM and HH:MM:SS inputs before range checks
var rawTimePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)

// validSlotPattern matches canonical half-hour slots (minute 00 or 30)
var validSlotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):(00|30)$`)

// NormalizeSlot canonicalizes a requested time representation into a single
// comparable slot key. Legacy AM/PM tokens are uppercased; H:MM, HH:MM and
// HH:MM:SS inputs within the 24h clock become zero-padded HH:MM. Anything
// else is returned verbatim (trimmed) and must be rejected via IsValidSlot.
//
// Normalization is idempotent: NormalizeSlot(NormalizeSlot(x)) == NormalizeSlot(x).
func NormalizeSlot(raw string) string {
	trimmed := strings.TrimSpace(raw)
	upper := strings.ToUpper(trimmed)
	if upper == SlotMorning || upper == SlotAfternoon {
		return upper
	}

	m := rawTimePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed
	}

	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if hh >= 0 && hh <= 23 && mm >= 0 && mm <= 59 {
		return fmt.Sprintf("%02d:%02d", hh, mm)
	}

	return trimmed
}

// IsValidSlot reports whether a slot is bookable: AM, PM or HH:MM aligned to
// the half-hour grid
func IsValidSlot(slot string) bool {
	if slot == SlotMorning || slot == SlotAfternoon {
		return true
	}
	return validSlotPattern.MatchString(slot)
}
