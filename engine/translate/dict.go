package translate

// dictionaries maps each supported source language to its word-by-word
// English substitutions. Coverage is intentionally narrow: admissions-domain
// vocabulary and the function words common in fact-sheet questions.
var dictionaries = map[string]map[string]string{
	"hi": {
		"फीस":          "fee",
		"शुल्क":        "fee",
		"प्रवेश":       "admission",
		"दाखिला":       "admission",
		"छात्रावास":    "hostel",
		"हॉस्टल":       "hostel",
		"प्लेसमेंट":    "placement",
		"नौकरी":        "job",
		"छात्रवृत्ति":  "scholarship",
		"कोर्स":        "course",
		"पाठ्यक्रम":    "course",
		"कॉलेज":        "college",
		"विश्वविद्यालय": "university",
		"पुस्तकालय":    "library",
		"परीक्षा":      "exam",
		"आवेदन":        "application",
		"कितनी":        "how much",
		"कितना":        "how much",
		"कैसे":         "how",
		"क्या":         "what",
		"कब":           "when",
		"कहाँ":         "where",
		"है":           "is",
		"हैं":          "are",
		"में":          "in",
		"के":           "of",
		"की":           "of",
		"का":           "of",
		"और":           "and",
		"उपलब्ध":       "available",
	},
	"bn": {
		"ফি":           "fee",
		"ভর্তি":        "admission",
		"হোস্টেল":      "hostel",
		"প্লেসমেন্ট":   "placement",
		"বৃত্তি":       "scholarship",
		"কোর্স":        "course",
		"কলেজ":         "college",
		"বিশ্ববিদ্যালয়": "university",
		"লাইব্রেরি":    "library",
		"পরীক্ষা":      "exam",
		"আবেদন":        "application",
		"কত":           "how much",
		"কিভাবে":       "how",
		"কি":           "what",
		"কখন":          "when",
		"কোথায়":        "where",
		"আছে":          "is",
		"এবং":          "and",
	},
	"ta": {
		"கட்டணம்":     "fee",
		"சேர்க்கை":    "admission",
		"விடுதி":      "hostel",
		"வேலைவாய்ப்பு": "placement",
		"உதவித்தொகை":  "scholarship",
		"படிப்பு":     "course",
		"கல்லூரி":     "college",
		"பல்கலைக்கழகம்": "university",
		"நூலகம்":      "library",
		"தேர்வு":      "exam",
		"விண்ணப்பம்":  "application",
		"எவ்வளவு":     "how much",
		"எப்படி":      "how",
		"என்ன":        "what",
		"எப்போது":     "when",
		"எங்கே":       "where",
		"உள்ளது":      "is",
		"மற்றும்":     "and",
	},
	"te": {
		"ఫీజు":        "fee",
		"ప్రవేశం":     "admission",
		"హాస్టల్":     "hostel",
		"ప్లేస్మెంట్": "placement",
		"స్కాలర్షిప్": "scholarship",
		"కోర్సు":      "course",
		"కళాశాల":      "college",
		"విశ్వవిద్యాలయం": "university",
		"లైబ్రరీ":     "library",
		"పరీక్ష":      "exam",
		"దరఖాస్తు":    "application",
		"ఎంత":         "how much",
		"ఎలా":         "how",
		"ఏమిటి":       "what",
		"ఎప్పుడు":     "when",
		"ఎక్కడ":       "where",
		"ఉంది":        "is",
		"మరియు":       "and",
	},
	"pa": {
		"ਫੀਸ":        "fee",
		"ਦਾਖਲਾ":      "admission",
		"ਹੋਸਟਲ":      "hostel",
		"ਪਲੇਸਮੈਂਟ":   "placement",
		"ਵਜ਼ੀਫ਼ਾ":     "scholarship",
		"ਕੋਰਸ":       "course",
		"ਕਾਲਜ":       "college",
		"ਯੂਨੀਵਰਸਿਟੀ": "university",
		"ਲਾਇਬ੍ਰੇਰੀ":  "library",
		"ਪ੍ਰੀਖਿਆ":    "exam",
		"ਅਰਜ਼ੀ":       "application",
		"ਕਿੰਨੀ":      "how much",
		"ਕਿਵੇਂ":      "how",
		"ਕੀ":         "what",
		"ਕਦੋਂ":       "when",
		"ਕਿੱਥੇ":      "where",
		"ਹੈ":         "is",
		"ਅਤੇ":        "and",
	},
}
