package skill

import (
	"fmt"
	"sort"
)

// Manifest field names.
const (
	fieldManifest              = "manifest"
	fieldPublishingInformation = "publishingInformation"
	fieldLocales               = "locales"
	fieldTestingInstructions   = "testingInstructions"
	fieldCategory              = "category"
	fieldPrivacyAndCompliance  = "privacyAndCompliance"

	fieldSmallIconURI   = "smallIconUri"
	fieldLargeIconURI   = "largeIconUri"
	fieldKeywords       = "keywords"
	fieldSummary        = "summary"
	fieldDescription    = "description"
	fieldExamplePhrases = "examplePhrases"
	fieldName           = "name"
)

// PublishingInformation returns manifest.publishingInformation.
func (d Document) PublishingInformation() (map[string]any, error) {
	return d.Object(fieldManifest, fieldPublishingInformation)
}

// Locales returns manifest.publishingInformation.locales.
func (d Document) Locales() (map[string]any, error) {
	return d.Object(fieldManifest, fieldPublishingInformation, fieldLocales)
}

// LocaleNames returns the locale keys in sorted order.
func (d Document) LocaleNames() ([]string, error) {
	locales, err := d.Locales()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SingleLocale returns the only key of the locales mapping. It fails with
// ErrLocaleCount when there are zero or several locales.
func (d Document) SingleLocale() (string, error) {
	locales, err := d.Locales()
	if err != nil {
		return "", err
	}
	if len(locales) != 1 {
		return "", fmt.Errorf("%w (found %d locales)", ErrLocaleCount, len(locales))
	}
	for name := range locales {
		return name, nil
	}
	return "", nil
}

// LocaleEntry returns the entry of the single locale.
func (d Document) LocaleEntry() (map[string]any, error) {
	locale, err := d.SingleLocale()
	if err != nil {
		return nil, err
	}
	return d.Object(fieldManifest, fieldPublishingInformation, fieldLocales, locale)
}

func (d Document) setLocaleField(field string, value any) error {
	entry, err := d.LocaleEntry()
	if err != nil {
		return err
	}
	entry[field] = value
	return nil
}

func (d Document) setPublishingField(field string, value any) error {
	info, err := d.PublishingInformation()
	if err != nil {
		return err
	}
	info[field] = value
	return nil
}

// SetIcons sets smallIconUri and largeIconUri on the single locale.
func (d Document) SetIcons(small, large string) error {
	entry, err := d.LocaleEntry()
	if err != nil {
		return err
	}
	entry[fieldSmallIconURI] = small
	entry[fieldLargeIconURI] = large
	return nil
}

// SetKeywords replaces the keywords of the single locale.
func (d Document) SetKeywords(keywords []string) error {
	return d.setLocaleField(fieldKeywords, stringList(keywords))
}

// SetSummary sets the summary of the single locale.
func (d Document) SetSummary(summary string) error {
	return d.setLocaleField(fieldSummary, summary)
}

// SetDescription sets the description of the single locale.
func (d Document) SetDescription(description string) error {
	return d.setLocaleField(fieldDescription, description)
}

// SetExamplePhrases replaces the example phrases of the single locale.
func (d Document) SetExamplePhrases(phrases []string) error {
	return d.setLocaleField(fieldExamplePhrases, stringList(phrases))
}

// SetSkillName sets the display name of the single locale. This is not the
// invocation name.
func (d Document) SetSkillName(name string) error {
	return d.setLocaleField(fieldName, name)
}

// SetTestingInstructions sets publishingInformation.testingInstructions.
func (d Document) SetTestingInstructions(instructions string) error {
	return d.setPublishingField(fieldTestingInstructions, instructions)
}

// SetCategory sets publishingInformation.category. The value is not checked
// against KnownCategories.
func (d Document) SetCategory(category string) error {
	return d.setPublishingField(fieldCategory, category)
}

// SetPrivacy replaces manifest.privacyAndCompliance.
func (d Document) SetPrivacy(p PrivacyCompliance) error {
	m, err := d.Object(fieldManifest)
	if err != nil {
		return err
	}
	m[fieldPrivacyAndCompliance] = p.fields()
	return nil
}

// MoveLocale rekeys the single locale's entry to newLocale. It returns the
// old key and false without changes when newLocale is already a key.
func (d Document) MoveLocale(newLocale string) (string, bool, error) {
	locales, err := d.Locales()
	if err != nil {
		return "", false, err
	}
	if _, ok := locales[newLocale]; ok {
		return newLocale, false, nil
	}
	old, err := d.SingleLocale()
	if err != nil {
		return "", false, err
	}
	locales[newLocale] = locales[old]
	delete(locales, old)
	return old, true, nil
}
