package textproc

func makeSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// englishStopWords are high-frequency function words excluded from
// vocabulary extraction.
var englishStopWords = makeSet(
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "has", "he", "in", "is", "it",
	"its", "of", "on", "or", "that", "the", "to", "was", "will", "with", "you", "your", "i",
	"me", "we", "us", "him", "her", "them", "this", "these", "those", "what", "which",
	"who", "where", "when", "why", "how", "am", "do", "does", "did", "have", "had", "having",
	"can", "could", "should", "would", "may", "might", "must", "shall", "all", "each", "every",
	"both", "few", "more", "most", "other", "some", "such", "no", "nor", "not", "only", "own",
	"same", "so", "than", "too", "very", "just", "been", "being", "then", "there", "about",
	"after", "before", "above", "below", "between", "during", "through", "without", "against",
	"among", "into", "within", "out", "off", "up", "down", "if", "because", "while", "until",
	"unless", "since", "now", "here", "once", "were", "ought",
)

var bengaliStopWords = makeSet(
	"এই", "ওই", "তা", "তাঁর", "তিনি", "তারা", "আমরা", "আমি", "আপনি", "তুমি", "তোমরা", "আমার", "তোমার",
	"এটা", "ওটা", "যে", "যা", "কেন", "কিভাবে", "কখন", "কোথায়", "এবং", "অথবা", "কিন্তু", "যদি", "কারণ",
	"যখন", "যখনই", "তার", "ওদের", "সঙ্গে", "জন্য", "উপর", "নিচে", "ভিতরে", "বাইরে", "হয়", "ছিল", "হবে",
	"না", "হ্যাঁ", "আর", "তবে", "থেকে", "পর্যন্ত", "মধ্যে", "কাছে", "প্রতি", "সময়", "এখন", "তখন",
)
