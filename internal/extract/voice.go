package extract

import "time"

// Fixed user-facing messages. Callers and tests match on these exactly.
const (
	MsgNoText       = "No text provided"
	MsgNoTextInImage = "No text detected in the image"
	msgVoiceParsed  = "Successfully parsed voice command"
	msgVoicePartial = "Could not extract all required information"
)

// ParseVoiceCommand extracts transaction fields from a speech-recognition
// transcript. Success requires an amount plus at least a vendor or a
// category; anything less is returned as a partial result for manual
// correction.
func ParseVoiceCommand(transcript string) Result {
	return ParseVoiceCommandAt(transcript, time.Now())
}

// ParseVoiceCommandAt is ParseVoiceCommand with an injected clock for the
// today-default date.
func ParseVoiceCommandAt(transcript string, now time.Time) Result {
	if transcript == "" {
		return Result{Success: false, Message: MsgNoText}
	}

	data := &Fields{
		Date: now.Format("2006-01-02"),
		Type: typeFromText(transcript),
	}

	if amount, ok := extractVoiceAmount(transcript); ok {
		data.Amount = amount
	}
	if vendor, ok := extractVoiceVendor(transcript); ok {
		data.Vendor = vendor
	}
	if category, ok := extractCategory(transcript); ok {
		data.Category = category
	}
	if notes, ok := extractNotes(transcript); ok {
		data.Notes = notes
	}

	// Partial data is still surfaced on failure so the user can correct
	// the form instead of repeating the capture.
	ok := data.Amount != "" && (data.Vendor != "" || data.Category != "")
	msg := msgVoiceParsed
	if !ok {
		msg = msgVoicePartial
	}
	return Result{Success: ok, Data: data, Message: msg}
}
