package ir

import "encoding/json"

// Kind is the closed set of component categories. Every extractor lowers
// source elements into one of these tags and every emitter must map each tag
// onto a target primitive.
type Kind string

const (
	KindButton     Kind = "button"
	KindTextField  Kind = "text_field"
	KindLabel      Kind = "label"
	KindImage      Kind = "image"
	KindLayout     Kind = "layout"
	KindNavigation Kind = "navigation"
	KindMenu       Kind = "menu"
	KindList       Kind = "list"
	KindGrid       Kind = "grid"
	KindDialog     Kind = "dialog"
	KindTab        Kind = "tab"
	KindCheckbox   Kind = "checkbox"
	KindRadio      Kind = "radio"
	KindDropdown   Kind = "dropdown"
	KindSlider     Kind = "slider"
	KindProgress   Kind = "progress"
	KindCard       Kind = "card"
	KindUnknown    Kind = "unknown"
)

// Kinds returns every component kind in declaration order. Emitters use the
// list to prove their primitive tables are exhaustive.
func Kinds() []Kind {
	return []Kind{
		KindButton, KindTextField, KindLabel, KindImage, KindLayout,
		KindNavigation, KindMenu, KindList, KindGrid, KindDialog,
		KindTab, KindCheckbox, KindRadio, KindDropdown, KindSlider,
		KindProgress, KindCard, KindUnknown,
	}
}

// ParseKind maps a wire string onto a Kind. Unrecognized values become
// KindUnknown so decoding stays total.
func ParseKind(value string) Kind {
	k := Kind(value)
	if k.Valid() {
		return k
	}
	return KindUnknown
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindButton, KindTextField, KindLabel, KindImage, KindLayout,
		KindNavigation, KindMenu, KindList, KindGrid, KindDialog,
		KindTab, KindCheckbox, KindRadio, KindDropdown, KindSlider,
		KindProgress, KindCard, KindUnknown:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// UnmarshalJSON keeps node decoding total: unknown tags collapse onto
// KindUnknown instead of failing the document.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*k = ParseKind(value)
	return nil
}
