package services

import (
	"regexp"
	"strconv"
	"strings"
)

// FormType selects which onboarding/profile rule table applies.
type FormType string

const (
	FormGuardian     FormType = "guardian"
	FormCaregiver    FormType = "caregiver"
	FormAcquaintance FormType = "acquaintance"
)

const (
	FieldName         = "name"
	FieldPhone        = "phone"
	FieldAge          = "age"
	FieldAddress      = "address"
	FieldWorkplace    = "workplace"
	FieldRelationship = "relationship"
	FieldMatchingCode = "matchingCode"
	FieldPatientName  = "patientName"
	FieldPatientAge   = "patientAge"
)

const (
	MsgFieldRequired        = "필수 입력 항목입니다."
	MsgNameFormat           = "이름은 2~5자의 한글로 입력해주세요."
	MsgPhoneFormat          = "연락처는 000-0000-0000 형식으로 입력해주세요."
	MsgAgeRange             = "나이는 1세부터 150세까지 입력할 수 있습니다."
	MsgCaregiverAgeRange    = "나이는 1세부터 120세까지 입력할 수 있습니다."
	MsgAddressTooShort      = "주소는 10자 이상 입력해주세요."
	MsgWorkplaceTooShort    = "소속은 2자 이상 입력해주세요."
	MsgRelationshipRequired = "환자와의 관계를 선택해주세요."
	MsgUnknownField         = "알 수 없는 입력 항목입니다."
)

var (
	hangulNameRegex = regexp.MustCompile(`^[가-힣]{2,5}$`)
	phoneRegex      = regexp.MustCompile(`^\d{3}-\d{4}-\d{4}$`)
)

// RelationshipOptions is the fixed selection set for the relationship field.
func RelationshipOptions() []string {
	return []string{"배우자", "자녀", "부모", "형제자매", "친척", "지인", "기타"}
}

type fieldRule struct {
	optional bool
	check    func(value string) string
}

var guardianFieldRules = map[string]fieldRule{
	FieldName:         {check: checkHangulName},
	FieldPhone:        {check: checkPhone},
	FieldAge:          {check: checkAgeRange(1, 150, MsgAgeRange)},
	FieldAddress:      {optional: true, check: checkAddress},
	FieldRelationship: {check: checkRelationship},
	FieldPatientName:  {check: checkHangulName},
	FieldPatientAge:   {check: checkAgeRange(1, 150, MsgAgeRange)},
}

var caregiverFieldRules = map[string]fieldRule{
	FieldName:         {check: checkHangulName},
	FieldPhone:        {check: checkPhone},
	FieldAge:          {check: checkAgeRange(1, 120, MsgCaregiverAgeRange)},
	FieldAddress:      {optional: true, check: checkAddress},
	FieldWorkplace:    {check: checkWorkplace},
	FieldMatchingCode: {optional: true, check: checkMatchingCode},
}

var acquaintanceFieldRules = map[string]fieldRule{
	FieldName:         {check: checkHangulName},
	FieldPhone:        {check: checkPhone},
	FieldAge:          {check: checkAgeRange(1, 150, MsgAgeRange)},
	FieldRelationship: {check: checkRelationship},
	FieldMatchingCode: {optional: true, check: checkMatchingCode},
}

var fieldRulesByForm = map[FormType]map[string]fieldRule{
	FormGuardian:     guardianFieldRules,
	FormCaregiver:    caregiverFieldRules,
	FormAcquaintance: acquaintanceFieldRules,
}

// ValidateField checks one form value against the fixed rule table and
// returns the inline error message, or "" when the value passes. Failures
// are returned as plain strings so forms can render them per field.
func ValidateField(form FormType, fieldName string, value string) string {
	rules, ok := fieldRulesByForm[form]
	if !ok {
		return MsgUnknownField
	}
	rule, ok := rules[fieldName]
	if !ok {
		return MsgUnknownField
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if rule.optional {
			return ""
		}
		return MsgFieldRequired
	}

	return rule.check(trimmed)
}

// FormFields lists the fields the given form validates.
func FormFields(form FormType) []string {
	rules, ok := fieldRulesByForm[form]
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(rules))
	for name := range rules {
		fields = append(fields, name)
	}
	return fields
}

func checkHangulName(value string) string {
	if !hangulNameRegex.MatchString(value) {
		return MsgNameFormat
	}
	return ""
}

func checkPhone(value string) string {
	if !phoneRegex.MatchString(value) {
		return MsgPhoneFormat
	}
	return ""
}

func checkAgeRange(min int, max int, message string) func(string) string {
	return func(value string) string {
		age, err := strconv.Atoi(value)
		if err != nil {
			return message
		}
		if age < min || age > max {
			return message
		}
		return ""
	}
}

func checkAddress(value string) string {
	if len([]rune(value)) < 10 {
		return MsgAddressTooShort
	}
	return ""
}

func checkWorkplace(value string) string {
	if len([]rune(value)) < 2 {
		return MsgWorkplaceTooShort
	}
	return ""
}

func checkRelationship(value string) string {
	for _, option := range RelationshipOptions() {
		if value == option {
			return ""
		}
	}
	return MsgRelationshipRequired
}

func checkMatchingCode(value string) string {
	if err := ValidateMatchingCodeFormat(value); err != nil {
		return MsgMatchingCodeFormat
	}
	return ""
}
