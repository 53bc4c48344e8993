package services

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LabelSet holds the section labels the analysis prompt asks for and the
// parser looks for, plus the fixed prompt phrases around them.
type LabelSet struct {
	NoteType        string        `yaml:"note_type"`
	ImportanceLevel string        `yaml:"importance_level"`
	Category        string        `yaml:"category"`
	Suggestions     string        `yaml:"suggestions"`
	SuggestedTags   string        `yaml:"suggested_tags"`
	Prompt          PromptPhrases `yaml:"prompt"`
}

type PromptPhrases struct {
	Intro             string `yaml:"intro"`
	NoteHeader        string `yaml:"note_header"`
	Title             string `yaml:"title"`
	Content           string `yaml:"content"`
	Pinned            string `yaml:"pinned"`
	Unpinned          string `yaml:"unpinned"`
	StartDate         string `yaml:"start_date"`
	EndDate           string `yaml:"end_date"`
	Tags              string `yaml:"tags"`
	FormatHeader      string `yaml:"format_header"`
	ResultHeader      string `yaml:"result_header"`
	NoteTypeHint      string `yaml:"note_type_hint"`
	ImportanceHint    string `yaml:"importance_hint"`
	CategoryHint      string `yaml:"category_hint"`
	SuggestionsHint   string `yaml:"suggestions_hint"`
	SuggestedTagsHint string `yaml:"suggested_tags_hint"`
	Closing           string `yaml:"closing"`
}

var TurkishLabels = LabelSet{
	NoteType:        "Not Türü:",
	ImportanceLevel: "Önem Seviyesi:",
	Category:        "Kategori:",
	Suggestions:     "Öneriler:",
	SuggestedTags:   "Etiket Önerileri:",
	Prompt: PromptPhrases{
		Intro:             "Sen bir not analiz uzmanısın. Aşağıdaki not verilerini analiz et ve her zaman aynı formatta yanıt ver.",
		NoteHeader:        "NOT VERİLERİ:",
		Title:             "Başlık:",
		Content:           "İçerik:",
		Pinned:            "Sabitlenmiş not",
		Unpinned:          "Normal not",
		StartDate:         "Başlangıç tarihi:",
		EndDate:           "Bitiş tarihi:",
		Tags:              "Etiketler:",
		FormatHeader:      "LÜTFEN AŞAĞIDAKİ FORMATTA YANIT VER (Her zaman aynı formatı kullan):",
		ResultHeader:      "ANALİZ SONUCU:",
		NoteTypeHint:      "[Notun türünü belirle: Kişisel, İş, Alışveriş, Hatırlatma, vs.]",
		ImportanceHint:    "[Düşük/Orta/Yüksek]",
		CategoryHint:      "[Notun hangi kategoriye ait olduğunu belirle]",
		SuggestionsHint:   "[Not için 2-3 kısa öneri, her biri * ile başlayan ayrı satırda]",
		SuggestedTagsHint: "[Mevcut etiketlere ek olarak önerilen etiketler, virgülle ayrılmış]",
		Closing:           "ÖNEMLİ: Her zaman yukarıdaki formatı kullan ve kısa, öz yanıtlar ver. Analiz sonucunu JSON formatında değil, düz metin olarak ver.",
	},
}

var EnglishLabels = LabelSet{
	NoteType:        "Note Type:",
	ImportanceLevel: "Importance Level:",
	Category:        "Category:",
	Suggestions:     "Suggestions:",
	SuggestedTags:   "Suggested Tags:",
	Prompt: PromptPhrases{
		Intro:             "You are a note analysis expert. Analyze the note below and always answer in the same format.",
		NoteHeader:        "NOTE DATA:",
		Title:             "Title:",
		Content:           "Content:",
		Pinned:            "Pinned note",
		Unpinned:          "Regular note",
		StartDate:         "Start date:",
		EndDate:           "End date:",
		Tags:              "Tags:",
		FormatHeader:      "PLEASE ANSWER IN THE FOLLOWING FORMAT (always use the same format):",
		ResultHeader:      "ANALYSIS RESULT:",
		NoteTypeHint:      "[Decide the kind of note: Personal, Work, Shopping, Reminder, etc.]",
		ImportanceHint:    "[Low/Medium/High]",
		CategoryHint:      "[Decide which category the note belongs to]",
		SuggestionsHint:   "[2-3 short suggestions, each on its own line starting with *]",
		SuggestedTagsHint: "[Tags to add to the existing ones, comma separated]",
		Closing:           "IMPORTANT: Always use the format above and keep answers short. Answer in plain text, not JSON.",
	},
}

var builtinLabels = map[string]LabelSet{
	"tr": TurkishLabels,
	"en": EnglishLabels,
}

// LabelSetFor returns the built-in label set of a language; empty means "tr".
func LabelSetFor(language string) (LabelSet, error) {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		lang = "tr"
	}
	labels, ok := builtinLabels[lang]
	if !ok {
		return LabelSet{}, fmt.Errorf("unknown analysis language %q", language)
	}
	return labels, nil
}

// LoadLabelSet overlays the YAML file at path on base. Keys missing from the
// file keep the base value.
func LoadLabelSet(path string, base LabelSet) (LabelSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LabelSet{}, fmt.Errorf("failed to read label file: %w", err)
	}
	labels := base
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return LabelSet{}, fmt.Errorf("failed to parse label file: %w", err)
	}
	if err := labels.Validate(); err != nil {
		return LabelSet{}, err
	}
	return labels, nil
}

func (l LabelSet) sectionLabels() []string {
	return []string{l.NoteType, l.ImportanceLevel, l.Category, l.Suggestions, l.SuggestedTags}
}

// Validate rejects blank or duplicated section labels, which would make the
// parser's extraction ambiguous.
func (l LabelSet) Validate() error {
	seen := make(map[string]bool, 5)
	for _, label := range l.sectionLabels() {
		label = strings.TrimSpace(label)
		if label == "" {
			return fmt.Errorf("label set has an empty section label")
		}
		if seen[label] {
			return fmt.Errorf("label set repeats section label %q", label)
		}
		seen[label] = true
	}
	return nil
}
