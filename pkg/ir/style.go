package ir

import "encoding/json"

// StyleModel is the flat design-token set shared by every screen of a
// template: semantic colors, typography roles, named dimensions and animation
// timing. Values stay as extracted strings; unit normalization is an emitter
// responsibility.
type StyleModel struct {
	Colors     map[string]string   `json:"colors"`
	Typography map[string]FontSpec `json:"typography"`
	Dimensions map[string]string   `json:"dimensions"`
	Animations map[string]string   `json:"animations"`
}

// RequiredColorKeys lists the semantic color slots that must be populated on
// every extracted template. Extractors start from DefaultStyle so the
// invariant holds even when a source resolves nothing.
func RequiredColorKeys() []string {
	return []string{
		"primary", "secondary", "accent", "background",
		"surface", "error", "text_primary", "text_secondary",
	}
}

// DefaultStyle returns the fallback style model. Extractors overwrite
// individual entries as they resolve values from the artifact.
func DefaultStyle() StyleModel {
	return StyleModel{
		Colors: map[string]string{
			"primary":        "#1976D2",
			"secondary":      "#424242",
			"accent":         "#FF4081",
			"background":     "#FFFFFF",
			"surface":        "#FFFFFF",
			"error":          "#F44336",
			"text_primary":   "#212121",
			"text_secondary": "#757575",
		},
		Typography: map[string]FontSpec{
			"font_family": {Family: "Roboto, Arial, sans-serif"},
			"h1":          {Size: "24px", Weight: "bold"},
			"h2":          {Size: "20px", Weight: "bold"},
			"h3":          {Size: "18px", Weight: "bold"},
			"body1":       {Size: "16px", Weight: "normal"},
			"body2":       {Size: "14px", Weight: "normal"},
			"button":      {Size: "14px", Weight: "medium", Transform: "uppercase"},
			"caption":     {Size: "12px", Weight: "normal"},
		},
		Dimensions: map[string]string{
			"padding":       "16px",
			"margin":        "8px",
			"border_radius": "4px",
			"icon_size":     "24px",
			"button_height": "36px",
			"input_height":  "40px",
		},
		Animations: map[string]string{
			"transition_duration": "0.3s",
			"transition_timing":   "ease",
		},
	}
}

// FontSpec describes one typography role. A role is either a bare string (the
// font_family entry) or an object with family and size; both forms appear in
// IR documents and must round-trip unchanged.
type FontSpec struct {
	Family    string `json:"-"`
	Size      string `json:"size,omitempty"`
	Weight    string `json:"weight,omitempty"`
	Transform string `json:"transform,omitempty"`
}

// MarshalJSON writes a bare JSON string when only Family is set, otherwise an
// object with the sized fields.
func (f FontSpec) MarshalJSON() ([]byte, error) {
	if f.Family != "" && f.Size == "" && f.Weight == "" && f.Transform == "" {
		return json.Marshal(f.Family)
	}
	type sized struct {
		Size      string `json:"size,omitempty"`
		Weight    string `json:"weight,omitempty"`
		Transform string `json:"transform,omitempty"`
	}
	return json.Marshal(sized{Size: f.Size, Weight: f.Weight, Transform: f.Transform})
}

// UnmarshalJSON accepts both wire forms.
func (f *FontSpec) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var family string
		if err := json.Unmarshal(data, &family); err != nil {
			return err
		}
		*f = FontSpec{Family: family}
		return nil
	}
	type sized FontSpec
	var s sized
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = FontSpec(s)
	return nil
}
