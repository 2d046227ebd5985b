// Package skill edits a voice-skill project: the skill.json manifest and the
// per-locale interaction model documents stored as models/<locale>.json.
//
// An Editor owns the manifest document for one run. Operations are applied in
// the order given to Apply and stop at the first error. Manifest changes stay
// in memory until Save; operations that touch a model document (invocation
// name, language model) read, change and write that document immediately.
//
// Model operations look up the current locale when they run. The CLI applies
// ChangeLocale before SetInvocationName and SetLanguageModel, so those always
// address the renamed model file.
package skill
