package skill

// Operation is one requested mutation. Build operations with the Set* and
// ChangeLocale constructors and run them with Editor.Apply.
type Operation struct {
	Name  string
	apply func(*Editor) error
}

func manifestOp(name string, fn func(Document) error) Operation {
	return Operation{Name: name, apply: func(e *Editor) error { return fn(e.doc) }}
}

// SetPrivacy replaces the privacy and compliance record.
func SetPrivacy(p PrivacyCompliance) Operation {
	return manifestOp("set-privacy", func(d Document) error { return d.SetPrivacy(p) })
}

// SetIcons sets the small and large icon URIs of the single locale.
func SetIcons(small, large string) Operation {
	return manifestOp("set-icons", func(d Document) error { return d.SetIcons(small, large) })
}

// SetKeywords replaces the keywords of the single locale.
func SetKeywords(keywords ...string) Operation {
	return manifestOp("set-keywords", func(d Document) error { return d.SetKeywords(keywords) })
}

// ChangeLocale moves the single locale to newLocale and renames its model
// file. It does nothing when newLocale is already a locale of the manifest.
func ChangeLocale(newLocale string) Operation {
	return Operation{Name: "change-locale", apply: func(e *Editor) error { return e.changeLocale(newLocale) }}
}

// SetSummary sets the summary of the single locale.
func SetSummary(summary string) Operation {
	return manifestOp("set-summary", func(d Document) error { return d.SetSummary(summary) })
}

// SetDescription sets the description of the single locale.
func SetDescription(description string) Operation {
	return manifestOp("set-description", func(d Document) error { return d.SetDescription(description) })
}

// SetExamplePhrases replaces the example phrases of the single locale.
func SetExamplePhrases(phrases ...string) Operation {
	return manifestOp("set-example-phrases", func(d Document) error { return d.SetExamplePhrases(phrases) })
}

// SetSkillName sets the name of the single locale.
func SetSkillName(name string) Operation {
	return manifestOp("set-skill-name", func(d Document) error { return d.SetSkillName(name) })
}

// SetTestingInstructions sets the testing instructions.
func SetTestingInstructions(instructions string) Operation {
	return manifestOp("set-testing-instructions", func(d Document) error { return d.SetTestingInstructions(instructions) })
}

// SetCategory sets the publishing category without validating it.
func SetCategory(category string) Operation {
	return manifestOp("set-category", func(d Document) error { return d.SetCategory(category) })
}

// SetInvocationName lowercases name and writes it to the single locale's
// model document immediately.
func SetInvocationName(name string) Operation {
	return Operation{Name: "set-invocation-name", apply: func(e *Editor) error {
		return e.updateModel(func(locale string, model Document) error {
			return model.SetInvocationName(locale, name)
		})
	}}
}

// SetLanguageModel replaces the single locale's language model with the
// languageModel object of the JSON file at path, writing it immediately.
func SetLanguageModel(path string) Operation {
	return Operation{Name: "set-language-model", apply: func(e *Editor) error { return e.setLanguageModel(path) }}
}
