package services

// Stop-word lists for the two scripts the application's knowledge base
// mixes: Arabic help/documentation text and Latin-script technical
// names. Single-character particles (و, ب, ل) never reach the lists
// because the tokenizer drops one-character terms.

var arabicStopWords = map[string]struct{}{
	"من": {}, "في": {}, "على": {}, "إلى": {}, "الى": {}, "عن": {},
	"مع": {}, "هذا": {}, "هذه": {}, "ذلك": {}, "تلك": {}, "التي": {},
	"الذي": {}, "الذين": {}, "أن": {}, "ان": {}, "إن": {}, "كان": {},
	"كانت": {}, "يكون": {}, "تكون": {}, "هو": {}, "هي": {}, "هم": {},
	"ما": {}, "لا": {}, "لم": {}, "لن": {}, "قد": {}, "كل": {},
	"بعض": {}, "بعد": {}, "قبل": {}, "عند": {}, "أو": {}, "او": {},
	"ثم": {}, "إذا": {}, "اذا": {}, "كما": {}, "بين": {}, "غير": {},
	"حتى": {}, "منذ": {}, "حيث": {}, "فيه": {}, "فيها": {}, "عليه": {},
	"عليها": {}, "له": {}, "لها": {}, "به": {}, "بها": {}, "أي": {},
	"اي": {}, "يتم": {}, "تم": {},
}

var englishStopWords = map[string]struct{}{
	"the": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {},
	"by": {}, "from": {}, "as": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "been": {}, "being": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "it": {}, "its": {},
	"if": {}, "then": {}, "than": {}, "so": {}, "not": {}, "no": {},
	"can": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"has": {}, "have": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"about": {}, "into": {}, "over": {}, "under": {}, "all": {},
	"any": {}, "each": {}, "other": {}, "some": {}, "such": {},
	"only": {}, "own": {}, "same": {}, "too": {}, "very": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "what": {},
	"how": {},
}
