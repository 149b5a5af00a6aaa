// ABOUTME: Tagged variant for heterogeneous CRM attribute values
// ABOUTME: Classifies raw typed-union payloads once into an enumerated kind
package models

import (
	"regexp"
	"strings"
)

// ValueKind enumerates the recognized shapes of a CRM attribute value.
type ValueKind int

const (
	// KindUnknown is the escape hatch: an object shape the classifier
	// does not recognize, passed through verbatim.
	KindUnknown ValueKind = iota
	KindPersonalName
	KindEmail
	KindPhone
	KindCurrency
	KindStatus
	KindRecordRef
	KindSelect
	KindDate
	KindScalar
	KindPrimitive
)

// Currency is the compound readable form of a currency value.
type Currency struct {
	Amount       any     `json:"amount"`
	CurrencyCode *string `json:"currency_code"`
}

// RecordRef is the compound readable form of a record reference.
type RecordRef struct {
	RecordID   any     `json:"record_id"`
	ObjectType *string `json:"object_type"`
}

// AttributeValue is one CRM field value classified by kind. Only the
// fields relevant to the kind are populated.
type AttributeValue struct {
	Kind     ValueKind
	Text     string    // name, email, phone, date string; status/select title when HasTitle
	HasTitle bool      // status/select carried a title string
	Currency Currency  // KindCurrency
	Ref      RecordRef // KindRecordRef
	Raw      any       // scalar/primitive/unknown payload; raw status/select when !HasTitle
}

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Classify inspects one raw attribute value and returns its tagged
// variant. The probe order is significant: specific shapes (currency,
// status, record reference) must be recognized before the generic
// value-field fallback, because some payloads carry both.
func Classify(raw any) AttributeValue {
	m, ok := raw.(map[string]any)
	if !ok {
		switch raw.(type) {
		case string, float64, bool, int, int64:
			return AttributeValue{Kind: KindPrimitive, Raw: raw}
		}
		return AttributeValue{Kind: KindUnknown, Raw: raw}
	}

	if full := stringField(m, "full_name"); full != "" {
		return AttributeValue{Kind: KindPersonalName, Text: full}
	}
	first := stringField(m, "first_name")
	last := stringField(m, "last_name")
	if first != "" || last != "" {
		return AttributeValue{Kind: KindPersonalName, Text: strings.TrimSpace(first + " " + last)}
	}
	if email := stringField(m, "email_address"); email != "" {
		return AttributeValue{Kind: KindEmail, Text: email}
	}
	if phone := stringField(m, "phone_number"); phone != "" {
		return AttributeValue{Kind: KindPhone, Text: phone}
	}
	if amount, ok := m["currency_value"]; ok {
		cur := Currency{Amount: amount}
		if code := stringField(m, "currency_code"); code != "" {
			cur.CurrencyCode = &code
		}
		return AttributeValue{Kind: KindCurrency, Currency: cur}
	}
	if status, ok := m["status"]; ok {
		return titled(KindStatus, status)
	}
	if target, ok := m["target_record_id"]; ok {
		ref := RecordRef{RecordID: target}
		if obj := stringField(m, "target_object"); obj != "" {
			ref.ObjectType = &obj
		}
		return AttributeValue{Kind: KindRecordRef, Ref: ref}
	}
	if option, ok := m["option"]; ok {
		return titled(KindSelect, option)
	}
	if value, ok := m["value"]; ok {
		if s, ok := value.(string); ok && datePrefix.MatchString(s) {
			return AttributeValue{Kind: KindDate, Text: s}
		}
		return AttributeValue{Kind: KindScalar, Raw: value}
	}
	return AttributeValue{Kind: KindUnknown, Raw: raw}
}

// Display returns the readable representation of the value: a string
// for textual kinds, a compound struct for currency and references,
// and the raw payload for everything else.
func (v AttributeValue) Display() any {
	switch v.Kind {
	case KindPersonalName, KindEmail, KindPhone, KindDate:
		return v.Text
	case KindCurrency:
		return v.Currency
	case KindRecordRef:
		return v.Ref
	case KindStatus, KindSelect:
		if v.HasTitle {
			return v.Text
		}
		return v.Raw
	}
	return v.Raw
}

func titled(kind ValueKind, payload any) AttributeValue {
	if m, ok := payload.(map[string]any); ok {
		if title := stringField(m, "title"); title != "" {
			return AttributeValue{Kind: kind, Text: title, HasTitle: true}
		}
	}
	return AttributeValue{Kind: kind, Raw: payload}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
