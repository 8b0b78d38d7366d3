package language

// Curated signature and dictionary tables for the supported languages.
// Marker words are common function words used purely as detection signals;
// gospel keywords are the devotional vocabulary the moderation engine
// scores on. The two lists overlap only where a devotional word is also a
// strong language signal (e.g. olúwa).

var defaultSignatures = []Signature{
	{
		Code: CodeEnglish,
		Name: "English",
		MarkerWords: []string{
			"the", "and", "is", "of", "to", "in", "that", "for",
			"with", "are", "this", "you", "your", "have", "will",
			"from", "they", "what", "when", "there",
		},
	},
	{
		Code: CodeYoruba,
		Name: "Yoruba",
		DiacriticMarkers: []rune{
			'ọ', 'ẹ', 'ṣ', 'à', 'á', 'è', 'é', 'ì', 'í', 'ò', 'ó', 'ù', 'ú', 'ń',
		},
		MarkerWords: []string{
			"mo", "ni", "mi", "ti", "si", "fun", "ati", "wa", "re",
			"jẹ", "kan", "yii", "gbogbo", "inu", "lati", "bi",
			"olúwa", "ọlọrun", "jésù", "dúpẹ́", "lọwọ", "ogo",
		},
	},
	{
		Code: CodeIgbo,
		Name: "Igbo",
		DiacriticMarkers: []rune{
			'ị', 'ụ', 'ọ', 'ṅ', 'à', 'á', 'è', 'é', 'ì', 'í', 'ù', 'ú',
		},
		MarkerWords: []string{
			"na", "bụ", "nke", "ya", "anyị", "gị", "ka", "ga",
			"ihe", "onye", "ndi", "obi", "aka", "maka", "dị", "ime",
			"chineke", "chukwu", "jisos", "onyenwe",
		},
	},
	{
		Code: CodeHausa,
		Name: "Hausa",
		DiacriticMarkers: []rune{
			'ɗ', 'ɓ', 'ƙ', 'ƴ',
		},
		MarkerWords: []string{
			"da", "ya", "ta", "na", "mu", "ku", "su", "wani",
			"amma", "kuma", "cikin", "wanda", "yana", "zai", "domin",
			"allah", "ubangiji", "yesu", "godiya",
		},
	},
	{
		Code: CodePidgin,
		Name: "Nigerian Pidgin",
		MarkerWords: []string{
			"dey", "una", "wetin", "abeg", "wahala", "sabi", "dem",
			"pikin", "wey", "don", "go", "make", "come", "naim",
			"oya", "shey", "gat", "plenty",
		},
	},
}

var defaultGospelKeywords = map[string][]string{
	CodeEnglish: {
		"jesus", "christ", "god", "lord", "worship", "praise",
		"hallelujah", "alleluia", "gospel", "holy spirit", "holy ghost",
		"prayer", "pray", "faith", "grace", "amen", "salvation",
		"bible", "heaven", "savior", "saviour", "redeemer", "anointing",
		"blessing", "blessed", "church", "psalm", "messiah", "glory",
		"testimony", "devotion", "hymn", "scripture",
	},
	CodeYoruba: {
		"olúwa", "ọlọrun", "jésù", "olódùmarè", "ògo", "ìyìn",
		"àdúrà", "dúpẹ́", "àánú", "ìbùkún", "halleluyah", "ààmín",
		"ìgbàlà", "ore-ọfẹ",
	},
	CodeIgbo: {
		"chineke", "chukwu", "jisos", "onyenwe anyị", "ekele",
		"ngọzi", "amara", "ekpere", "otuto", "nzọpụta", "eligwe",
	},
	CodeHausa: {
		"allah", "ubangiji", "yesu", "almasihu", "addu'a", "yabo",
		"godiya", "albarka", "ceto", "ruhu mai tsarki", "sama",
	},
	CodePidgin: {
		"baba god", "papa god", "god dey", "oga jesus",
		"thank you jesus", "god win", "halleluyah",
	},
}

// defaultProhibitedTerms is the flat, language-agnostic disallowed list.
// Checked whole-word before any approval logic; devotional vocabulary
// cannot offset a hit here.
var defaultProhibitedTerms = []string{
	"explicit", "porn", "pornography", "sexual", "nude", "naked",
	"erotic", "fuck", "shit", "bitch", "bastard", "asshole",
	"cocaine", "marijuana", "weed", "cultist", "ritual money",
	"blood money", "yahoo yahoo", "scam", "fraud",
}
