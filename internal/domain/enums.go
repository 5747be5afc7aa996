package domain

// PaymentStatus drives the colored banner in the rendered document.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
)

// ChargeMode says whether a VAT/tax amount is a rate applied to the subtotal or an
// absolute value. Anything unrecognized is treated as PERCENTAGE.
type ChargeMode string

const (
	ChargeModePercentage ChargeMode = "PERCENTAGE"
	ChargeModeFixed      ChargeMode = "FIXED"
)

// AudioType represents the accepted audio upload formats.
type AudioType string

const (
	AudioTypeMP3  AudioType = "mp3"
	AudioTypeWAV  AudioType = "wav"
	AudioTypeOGG  AudioType = "ogg"
	AudioTypeM4A  AudioType = "m4a"
	AudioTypeWEBM AudioType = "webm"
)

// AllowedAudioTypes maps AudioType to its MIME content type.
var AllowedAudioTypes = map[AudioType]string{
	AudioTypeMP3:  "audio/mpeg",
	AudioTypeWAV:  "audio/wav",
	AudioTypeOGG:  "audio/ogg",
	AudioTypeM4A:  "audio/mp4",
	AudioTypeWEBM: "audio/webm",
}

// AllowedAudioExtensions maps file extensions (without dot) to AudioType.
var AllowedAudioExtensions = map[string]AudioType{
	"mp3":  AudioTypeMP3,
	"wav":  AudioTypeWAV,
	"ogg":  AudioTypeOGG,
	"m4a":  AudioTypeM4A,
	"webm": AudioTypeWEBM,
}
