package index

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Vectorizer tunables. Compiled-in: the model is a fixed heuristic,
// not runtime configuration.
const (
	maxFeatures = 8000 // vocabulary cap, most frequent terms kept
	maxDocFreq  = 0.95 // discard terms present in >95% of documents
)

// wordRe matches the word tokens the vectorizer sees: two or more
// word characters on lowercased text.
var wordRe = regexp.MustCompile(`[a-z0-9_]{2,}`)

// indexStopwords is the fixed English stopword list excluded from the
// vocabulary. Bigrams are built after stopword removal.
var indexStopwords = map[string]bool{
	"a": true, "about": true, "above": true, "across": true, "after": true,
	"afterwards": true, "again": true, "against": true, "all": true, "almost": true,
	"alone": true, "along": true, "already": true, "also": true, "although": true,
	"always": true, "am": true, "among": true, "amongst": true, "an": true,
	"and": true, "another": true, "any": true, "anyhow": true, "anyone": true,
	"anything": true, "anyway": true, "anywhere": true, "are": true, "around": true,
	"as": true, "at": true, "back": true, "be": true, "became": true,
	"because": true, "become": true, "becomes": true, "becoming": true, "been": true,
	"before": true, "beforehand": true, "behind": true, "being": true, "below": true,
	"beside": true, "besides": true, "between": true, "beyond": true, "both": true,
	"but": true, "by": true, "can": true, "cannot": true, "could": true,
	"did": true, "do": true, "does": true, "doing": true, "done": true,
	"down": true, "during": true, "each": true, "either": true, "else": true,
	"elsewhere": true, "enough": true, "etc": true, "even": true, "ever": true,
	"every": true, "everyone": true, "everything": true, "everywhere": true,
	"few": true, "first": true, "for": true, "former": true, "formerly": true,
	"from": true, "further": true, "had": true, "has": true, "have": true,
	"he": true, "hence": true, "her": true, "here": true, "hereafter": true,
	"hereby": true, "herein": true, "hers": true, "herself": true, "him": true,
	"himself": true, "his": true, "how": true, "however": true, "i": true,
	"ie": true, "if": true, "in": true, "indeed": true, "into": true,
	"is": true, "it": true, "its": true, "itself": true, "last": true,
	"latter": true, "latterly": true, "least": true, "less": true, "many": true,
	"may": true, "me": true, "meanwhile": true, "might": true, "mine": true,
	"more": true, "moreover": true, "most": true, "mostly": true, "much": true,
	"must": true, "my": true, "myself": true, "namely": true, "neither": true,
	"never": true, "nevertheless": true, "next": true, "no": true, "nobody": true,
	"none": true, "noone": true, "nor": true, "not": true, "nothing": true,
	"now": true, "nowhere": true, "of": true, "off": true, "often": true,
	"on": true, "once": true, "one": true, "only": true, "onto": true,
	"or": true, "other": true, "others": true, "otherwise": true, "our": true,
	"ours": true, "ourselves": true, "out": true, "over": true, "own": true,
	"per": true, "perhaps": true, "please": true, "rather": true, "re": true,
	"same": true, "seem": true, "seemed": true, "seeming": true, "seems": true,
	"she": true, "should": true, "since": true, "so": true, "some": true,
	"somehow": true, "someone": true, "something": true, "sometime": true,
	"sometimes": true, "somewhere": true, "still": true, "such": true, "than": true,
	"that": true, "the": true, "their": true, "theirs": true, "them": true,
	"themselves": true, "then": true, "thence": true, "there": true, "thereafter": true,
	"thereby": true, "therefore": true, "therein": true, "thereupon": true,
	"these": true, "they": true, "this": true, "those": true, "though": true,
	"through": true, "throughout": true, "thru": true, "thus": true, "to": true,
	"together": true, "too": true, "toward": true, "towards": true, "under": true,
	"until": true, "up": true, "upon": true, "us": true, "very": true,
	"via": true, "was": true, "we": true, "well": true, "were": true,
	"what": true, "whatever": true, "when": true, "whence": true, "whenever": true,
	"where": true, "whereafter": true, "whereas": true, "whereby": true,
	"wherein": true, "whereupon": true, "wherever": true, "whether": true,
	"which": true, "while": true, "whither": true, "who": true, "whoever": true,
	"whole": true, "whom": true, "whose": true, "why": true, "will": true,
	"with": true, "within": true, "without": true, "would": true, "yet": true,
	"you": true, "your": true, "yours": true, "yourself": true, "yourselves": true,
}

// sparseVec is a sorted-index sparse vector of term weights.
type sparseVec struct {
	idx []int
	val []float64
}

// dot multiplies two sparse vectors by merging their sorted indices.
func (a sparseVec) dot(b sparseVec) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(a.idx) && j < len(b.idx) {
		switch {
		case a.idx[i] == b.idx[j]:
			sum += a.val[i] * b.val[j]
			i++
			j++
		case a.idx[i] < b.idx[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// vocabulary is the fitted term-weighting model: term columns plus
// inverse-document-frequency weights.
type vocabulary struct {
	columns map[string]int
	idf     []float64
}

// ngrams tokenizes text and returns unigrams plus bigrams, with
// stopwords removed before bigram construction.
func ngrams(text string) []string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	kept := words[:0]
	for _, w := range words {
		if !indexStopwords[w] {
			kept = append(kept, w)
		}
	}

	terms := make([]string, 0, 2*len(kept))
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}

// fitVocabulary builds the vocabulary over the given documents:
// counts document and corpus frequencies, discards terms above the
// max-df cutoff, keeps the maxFeatures most frequent terms (ties
// alphabetical), and computes smoothed IDF weights.
func fitVocabulary(docs [][]string) *vocabulary {
	n := len(docs)
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)

	for _, terms := range docs {
		seen := make(map[string]bool, len(terms))
		for _, t := range terms {
			corpusFreq[t]++
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}

	cutoff := maxDocFreq * float64(n)
	candidates := make([]string, 0, len(docFreq))
	for t, df := range docFreq {
		if float64(df) > cutoff {
			continue
		}
		candidates = append(candidates, t)
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if corpusFreq[a] != corpusFreq[b] {
			return corpusFreq[a] > corpusFreq[b]
		}
		return a < b
	})
	if len(candidates) > maxFeatures {
		candidates = candidates[:maxFeatures]
	}
	sort.Strings(candidates)

	v := &vocabulary{
		columns: make(map[string]int, len(candidates)),
		idf:     make([]float64, len(candidates)),
	}
	for col, t := range candidates {
		v.columns[t] = col
		v.idf[col] = math.Log(float64(1+n)/float64(1+docFreq[t])) + 1
	}
	return v
}

// transform projects a term sequence into the fitted space: sublinear
// term frequency (1 + ln tf) times IDF, L2-normalized.
func (v *vocabulary) transform(terms []string) sparseVec {
	tf := make(map[int]int)
	for _, t := range terms {
		if col, ok := v.columns[t]; ok {
			tf[col]++
		}
	}
	if len(tf) == 0 {
		return sparseVec{}
	}

	cols := make([]int, 0, len(tf))
	for col := range tf {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	vec := sparseVec{idx: cols, val: make([]float64, len(cols))}
	norm := 0.0
	for i, col := range cols {
		w := (1 + math.Log(float64(tf[col]))) * v.idf[col]
		vec.val[i] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range vec.val {
		vec.val[i] /= norm
	}
	return vec
}
