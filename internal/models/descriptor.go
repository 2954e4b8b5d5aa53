package models

// Tone is the colour family a badge or chip is rendered with
type Tone string

const (
	ToneBlue    Tone = "blue"
	TonePurple  Tone = "purple"
	ToneOrange  Tone = "orange"
	ToneRed     Tone = "red"
	ToneGreen   Tone = "green"
	ToneYellow  Tone = "yellow"
	ToneSlate   Tone = "slate"
	ToneEmerald Tone = "emerald"
)

// Descriptor is the fixed presentation of one enumerated value
type Descriptor struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

// Bucket is a named partition of the inspection list
type Bucket string

const (
	BucketKantin Bucket = "kantin"
	BucketDAS    Bucket = "das"
	BucketLain   Bucket = "lain"
)

// Buckets is the render order of the inspection sections
var Buckets = []Bucket{BucketKantin, BucketDAS, BucketLain}

func (b Bucket) Descriptor() Descriptor {
	switch b {
	case BucketKantin:
		return Descriptor{Label: "Kantin Sekolah", Tone: ToneBlue}
	case BucketDAS:
		return Descriptor{Label: "Dapur Asrama (DAS)", Tone: TonePurple}
	default:
		return Descriptor{Label: "Institusi & Lain-lain", Tone: ToneOrange}
	}
}

// SlotDescriptor is the calendar chip style for visit slot 1..3
func SlotDescriptor(slot int) Descriptor {
	switch slot {
	case 1:
		return Descriptor{Label: "Lawatan 1", Tone: ToneBlue}
	case 2:
		return Descriptor{Label: "Lawatan 2", Tone: TonePurple}
	default:
		return Descriptor{Label: "Lawatan 3", Tone: ToneOrange}
	}
}

func (s SampleStatus) Descriptor() Descriptor {
	switch s {
	case SampleFailed:
		return Descriptor{Label: "Gagal", Tone: ToneRed}
	case SamplePassed:
		return Descriptor{Label: "Berjaya", Tone: ToneGreen}
	default:
		return Descriptor{Label: "Pending", Tone: ToneYellow}
	}
}

func (r SeizureReason) Descriptor() Descriptor {
	switch r {
	case ReasonExpired:
		return Descriptor{Label: string(r), Tone: ToneRed}
	case ReasonDamaged:
		return Descriptor{Label: string(r), Tone: ToneOrange}
	default:
		return Descriptor{Label: string(r), Tone: ToneSlate}
	}
}
