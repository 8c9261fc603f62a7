package examparse

import (
	"regexp"
	"sync"
)

// Rule is one broken-pattern to canonical-text substitution.
type Rule struct {
	Pattern string // regular expression, applied case-insensitively
	Replace string // replacement text, may reference capture groups with $1
}

type compiledRule struct {
	re  *regexp.Regexp
	out string
}

// RuleSet holds the word-repair data tables. The tables are audited data,
// not logic: callers may swap them (Config.Rules) without touching the
// cascade itself.
type RuleSet struct {
	common     []compiledRule
	additional []compiledRule
	shortWords map[string]bool
	theWords   map[string]bool
}

var (
	defaultRules     *RuleSet
	defaultRulesOnce sync.Once
)

// DefaultRules returns the built-in repair tables, compiled once.
func DefaultRules() *RuleSet {
	defaultRulesOnce.Do(func() {
		defaultRules = CompileRules(commonFixes, additionalFixes, shortWords, realTheWords)
	})
	return defaultRules
}

// CompileRules builds a RuleSet from raw tables. Patterns are compiled
// case-insensitively; a bad pattern panics, as the tables are package data.
func CompileRules(common, additional []Rule, short, theWords []string) *RuleSet {
	rs := &RuleSet{
		shortWords: make(map[string]bool, len(short)),
		theWords:   make(map[string]bool, len(theWords)),
	}
	for _, r := range common {
		rs.common = append(rs.common, compiledRule{regexp.MustCompile("(?i)" + r.Pattern), r.Replace})
	}
	for _, r := range additional {
		rs.additional = append(rs.additional, compiledRule{regexp.MustCompile("(?i)" + r.Pattern), r.Replace})
	}
	for _, w := range short {
		rs.shortWords[w] = true
	}
	for _, w := range theWords {
		rs.theWords[w] = true
	}
	return rs
}

// ShortWords returns the whitelist of genuinely valid short words that the
// generic merge fallback must never absorb.
func (rs *RuleSet) ShortWords() []string {
	out := make([]string, 0, len(rs.shortWords))
	for w := range rs.shortWords {
		out = append(out, w)
	}
	return out
}

// shortWords lists valid 1-2 letter words (plus option-label forms) that the
// generic merge pass leaves alone.
var shortWords = []string{
	"a", "i", "am", "an", "as", "at", "be", "by", "do", "go", "he", "if",
	"in", "is", "it", "me", "my", "no", "of", "on", "or", "so", "to", "up",
	"us", "we", "a.", "b.", "c.", "d.", "e.", "re", "vs", "ok", "ex",
}

// realTheWords are legitimate English words ending in "the" that the run-on
// suffix fallback must not split.
var realTheWords = []string{
	"breathe", "loathe", "clothe", "soothe", "bathe", "tithe", "scythe",
	"writhe", "blithe",
}

// commonFixes repairs known high-frequency split words. Applied first, with
// the case shape of the match preserved. Ordered; order is load-bearing.
var commonFixes = []Rule{
	// Short word splits at unusual points.
	{`\ba\s+nd\b`, "and"},
	{`\ba\s+ndthe\b`, "and the"},
	{`\ba\s+s\b`, "as"},
	{`\bo\s+f\b`, "of"},
	{`\bo\s+n\b`, "on"},
	{`\bo\s+r\b`, "or"},
	{`\bi\s+n\b`, "in"},
	{`\bi\s+s\b`, "is"},
	{`\bi\s+t\b`, "it"},
	{`\bt\s+o\b`, "to"},
	{`\bt\s+he\b`, "the"},
	{`\bw\s+e\b`, "we"},
	{`\bb\s+e\b`, "be"},
	{`\bb\s+y\b`, "by"},
	{`\ba\s+t\b`, "at"},
	{`\bu\s+p\b`, "up"},
	{`\bn\s+o\b`, "no"},
	{`\bs\s+o\b`, "so"},
	{`\bm\s+y\b`, "my"},
	{`\bh\s+e\b`, "he"},
	{`\bf\s+or\b`, "for"},
	{`\bf\s+rom\b`, "from"},
	{`\bw\s+ith\b`, "with"},
	{`\bth\s+at\b`, "that"},
	{`\bth\s+is\b`, "this"},
	{`\bth\s+ey\b`, "they"},
	{`\bth\s+em\b`, "them"},
	{`\bth\s+en\b`, "then"},
	{`\bwh\s+en\b`, "when"},
	{`\bwh\s+at\b`, "what"},
	{`\bwh\s+o\b`, "who"},
	{`\bwh\s+ich\b`, "which"},
	{`\bha\s+ve\b`, "have"},
	{`\bha\s+s\b`, "has"},
	{`\bha\s+d\b`, "had"},
	{`\bca\s+n\b`, "can"},
	{`\bwi\s+ll\b`, "will"},
	{`\bwo\s+uld\b`, "would"},
	{`\bwi\s+th\b`, "with"},
	{`\bev\s+al\s*uating\b`, "evaluating"},
	{`\beval\s+uating\b`, "evaluating"},
	{`\bsitu\s+ation\b`, "situation"},

	// Business and finance core terms.
	{`\bbusi?\s*ness\b`, "business"},
	{`\bbus\s+iness\b`, "business"},
	{`\bfi\s*nance\b`, "finance"},
	{`\bfi\s*nan\s*cial\b`, "financial"},
	{`\bin\s*for\s*ma\s*tion\b`, "information"},
	{`\binfor\s*mation\b`, "information"},
	{`\bman\s*age\s*ment\b`, "management"},
	{`\bmanage\s*ment\b`, "management"},
	{`\bcus\s*tom\s*er\b`, "customer"},
	{`\bcustom\s*er\b`, "customer"},
	{`\bcom\s*pa\s*ny\b`, "company"},
	{`\bcompan\s*y\b`, "company"},
	{`\bpro\s*duct\b`, "product"},
	{`\bproduc\s*t\b`, "product"},
	{`\bser\s*vice\b`, "service"},
	{`\bservic\s*e\b`, "service"},
	{`\bmar\s*ket\s*ing\b`, "marketing"},
	{`\bmarket\s*ing\b`, "marketing"},
	{`\bem\s*ploy\s*ee\b`, "employee"},
	{`\bemploy\s*ee\b`, "employee"},
	{`\bor\s*gan\s*iza\s*tion\b`, "organization"},
	{`\borgan\s*ization\b`, "organization"},
	{`\borganiza\s*tion\b`, "organization"},
	{`\bcom\s*mu\s*ni\s*ca\s*tion\b`, "communication"},
	{`\bcommunica\s*tion\b`, "communication"},
	{`\bde\s*ci\s*sion\b`, "decision"},
	{`\bdeci\s*sion\b`, "decision"},
	{`\bop\s*er\s*a\s*tion\b`, "operation"},
	{`\bopera\s*tion\b`, "operation"},

	// Common verbs.
	{`\bSOURC\s*E\b`, "SOURCE"},
	{`\bsourc\s*e\b`, "source"},
	{`\bre\s*triev\s*ed\b`, "retrieved"},
	{`\bRetriev\s*ed\b`, "Retrieved"},
	{`\bdeter\s*mine\b`, "determine"},
	{`\bunder\s*stand\b`, "understand"},
	{`\bunder\s*standing\b`, "understanding"},
	{`\bpro\s*vide\b`, "provide"},
	{`\bprovid\s*ing\b`, "providing"},
	{`\bim\s*prove\b`, "improve"},
	{`\bimprov\s*ing\b`, "improving"},
	{`\bcon\s*sider\b`, "consider"},
	{`\bcon\s*tact\b`, "contact"},
	{`\bcon\s*trol\b`, "control"},
	{`\bcon\s*tract\b`, "contract"},
	{`\bcon\s*sumer\b`, "consumer"},
	{`\bcon\s*tinue\b`, "continue"},
	{`\bex\s*ample\b`, "example"},
	{`\bex\s*plain\b`, "explain"},
	{`\bex\s*pect\b`, "expect"},
	{`\bex\s*perience\b`, "experience"},
	{`\bre\s*quire\b`, "require"},
	{`\bre\s*sponse\b`, "response"},
	{`\bre\s*sult\b`, "result"},
	{`\bre\s*port\b`, "report"},
	{`\bre\s*ceive\b`, "receive"},
	{`\bre\s*view\b`, "review"},
	{`\bre\s*search\b`, "research"},
	{`\bper\s*form\b`, "perform"},
	{`\bper\s*son\b`, "person"},
	{`\bper\s*sonal\b`, "personal"},

	// Common nouns.
	{`\bprofes\s*sional\b`, "professional"},
	{`\brel\s*ation\s*ship\b`, "relationship"},
	{`\brelation\s*ship\b`, "relationship"},
	{`\bdevel\s*op\s*ment\b`, "development"},
	{`\bdevelop\s*ment\b`, "development"},
	{`\benviron\s*ment\b`, "environment"},
	{`\btech\s*nol\s*ogy\b`, "technology"},
	{`\btechnol\s*ogy\b`, "technology"},
	{`\badver\s*tis\s*ing\b`, "advertising"},
	{`\badvertis\s*ing\b`, "advertising"},
	{`\bexplan\s*ation\b`, "explanation"},
	{`\binstru\s*ment\b`, "instrument"},
	{`\bques\s*tion\b`, "question"},
	{`\bregu\s*la\s*tion\b`, "regulation"},
	{`\bregula\s*tion\b`, "regulation"},
	{`\bdocu\s*ment\b`, "document"},
	{`\bstate\s*ment\b`, "statement"},
	{`\binvest\s*ment\b`, "investment"},
	{`\bequip\s*ment\b`, "equipment"},
	{`\brequire\s*ment\b`, "requirement"},
	{`\bachieve\s*ment\b`, "achievement"},
	{`\badvan\s*tage\b`, "advantage"},
	{`\bknowl\s*edge\b`, "knowledge"},
	{`\bstra\s*tegy\b`, "strategy"},
	{`\bstrateg\s*y\b`, "strategy"},
	{`\bactiv\s*ity\b`, "activity"},
	{`\bopportun\s*ity\b`, "opportunity"},
	{`\brespons\s*ibility\b`, "responsibility"},
	{`\bresponsi\s*bility\b`, "responsibility"},
	{`\babil\s*ity\b`, "ability"},
	{`\bqual\s*ity\b`, "quality"},
	{`\bquant\s*ity\b`, "quantity"},
	{`\butil\s*ity\b`, "utility"},
	{`\bsecur\s*ity\b`, "security"},
	{`\bauthor\s*ity\b`, "authority"},
	{`\bprior\s*ity\b`, "priority"},
	{`\bcomplex\s*ity\b`, "complexity"},

	// More business terms.
	{`\bemploy\s*er\b`, "employer"},
	{`\bemploy\s*ment\b`, "employment"},
	{`\bsales\s*person\b`, "salesperson"},
	{`\bread\s*ing\b`, "reading"},
	{`\bwrit\s*ing\b`, "writing"},
	{`\bspeak\s*ing\b`, "speaking"},
	{`\blisten\s*ing\b`, "listening"},
	{`\blearn\s*ing\b`, "learning"},
	{`\btrain\s*ing\b`, "training"},
	{`\bplan\s*ning\b`, "planning"},
	{`\bbudget\s*ing\b`, "budgeting"},
	{`\baccount\s*ing\b`, "accounting"},
	{`\bbank\s*ing\b`, "banking"},
	{`\bpric\s*ing\b`, "pricing"},
	{`\bbrand\s*ing\b`, "branding"},
	{`\bsell\s*ing\b`, "selling"},
	{`\bbuy\s*ing\b`, "buying"},
	{`\bship\s*ping\b`, "shipping"},
	{`\bpack\s*aging\b`, "packaging"},
	{`\bpromot\s*ion\b`, "promotion"},
	{`\bpromo\s*tion\b`, "promotion"},
	{`\bdistri\s*bution\b`, "distribution"},
	{`\bproduct\s*ion\b`, "production"},
	{`\bcompet\s*ition\b`, "competition"},
	{`\bcompeti\s*tion\b`, "competition"},
	{`\bposi\s*tion\b`, "position"},
	{`\bcondi\s*tion\b`, "condition"},
	{`\btransi\s*tion\b`, "transition"},
	{`\bsolu\s*tion\b`, "solution"},
	{`\beval\s*uation\b`, "evaluation"},
	{`\bsitu\s*ation\b`, "situation"},
	{`\bpresen\s*tation\b`, "presentation"},
	{`\bappli\s*cation\b`, "application"},
	{`\binforma\s*tion\b`, "information"},
	{`\bimport\s*ant\b`, "important"},
	{`\bdiffer\s*ent\b`, "different"},
	{`\beffect\s*ive\b`, "effective"},
	{`\bproduct\s*ive\b`, "productive"},
	{`\bposit\s*ive\b`, "positive"},
	{`\bnegat\s*ive\b`, "negative"},
	{`\bcreate\s*ive\b`, "creative"},
	{`\bcompet\s*itive\b`, "competitive"},

	// Additional common words.
	{`\bfollow\s*ing\b`, "following"},
	{`\binclu\s*ding\b`, "including"},
	{`\bbecome\s*ing\b`, "becoming"},
	{`\bbehav\s*ior\b`, "behavior"},
	{`\binter\s*est\b`, "interest"},
	{`\binter\s*net\b`, "internet"},
	{`\binter\s*view\b`, "interview"},
	{`\binter\s*nal\b`, "internal"},
	{`\binter\s*action\b`, "interaction"},
	{`\bextern\s*al\b`, "external"},
	{`\borigin\s*al\b`, "original"},
	{`\bperson\s*al\b`, "personal"},
	{`\bproces\s*s\b`, "process"},
	{`\bprogr\s*am\b`, "program"},
	{`\bprob\s*lem\b`, "problem"},
	{`\bpur\s*pose\b`, "purpose"},
	{`\bpur\s*chase\b`, "purchase"},
	{`\bstand\s*ard\b`, "standard"},
	{`\bpart\s*ner\b`, "partner"},
	{`\bpart\s*nership\b`, "partnership"},
	{`\bleader\s*ship\b`, "leadership"},
	{`\bmember\s*ship\b`, "membership"},
	{`\bowner\s*ship\b`, "ownership"},
	{`\bspons\s*orship\b`, "sponsorship"},
	{`\bintern\s*ship\b`, "internship"},
	{`\bscholar\s*ship\b`, "scholarship"},
	{`\bcitizen\s*ship\b`, "citizenship"},
	{`\bfriend\s*ship\b`, "friendship"},
	{`\bwork\s*place\b`, "workplace"},
	{`\bmarket\s*place\b`, "marketplace"},

	// Common short splits, both split points.
	{`\bwi\s*th\b`, "with"},
	{`\bwit\s*h\b`, "with"},
	{`\bth\s*at\b`, "that"},
	{`\btha\s*t\b`, "that"},
	{`\bth\s*is\b`, "this"},
	{`\bthi\s*s\b`, "this"},
	{`\bth\s*ey\b`, "they"},
	{`\bthe\s*y\b`, "they"},
	{`\bth\s*em\b`, "them"},
	{`\bthe\s*m\b`, "them"},
	{`\bth\s*eir\b`, "their"},
	{`\bthei\s*r\b`, "their"},
	{`\bth\s*ere\b`, "there"},
	{`\bther\s*e\b`, "there"},
	{`\bth\s*ese\b`, "these"},
	{`\bthes\s*e\b`, "these"},
	{`\bwh\s*ich\b`, "which"},
	{`\bwhic\s*h\b`, "which"},
	{`\bwh\s*en\b`, "when"},
	{`\bwhe\s*n\b`, "when"},
	{`\bwh\s*ere\b`, "where"},
	{`\bwher\s*e\b`, "where"},
	{`\bwh\s*at\b`, "what"},
	{`\bwha\s*t\b`, "what"},
	{`\bab\s*out\b`, "about"},
	{`\babou\s*t\b`, "about"},
	{`\bfr\s*om\b`, "from"},
	{`\bfro\s*m\b`, "from"},
	{`\bha\s*ve\b`, "have"},
	{`\bsh\s*ould\b`, "should"},
	{`\bshou\s*ld\b`, "should"},
	{`\bwo\s*uld\b`, "would"},
	{`\bwoul\s*d\b`, "would"},
	{`\bco\s*uld\b`, "could"},
	{`\bcoul\s*d\b`, "could"},
	{`\bbe\s*cause\b`, "because"},
	{`\bbecau\s*se\b`, "because"},
	{`\bbefor\s*e\b`, "before"},
	{`\baft\s*er\b`, "after"},
	{`\bafte\s*r\b`, "after"},
	{`\both\s*er\b`, "other"},
	{`\bothe\s*r\b`, "other"},
	{`\beff\s*ect\b`, "effect"},
	{`\beffec\s*t\b`, "effect"},
}

// additionalFixes covers rarer compound and run-on corruptions found through
// corpus audits. Applied after punctuation and contraction repair.
var additionalFixes = []Rule{
	{`\bciv\s*il\b`, "civil"},
	{`\bmaj\s*ority\b`, "majority"},
	{`\bret\s*ailers\b`, "retailers"},
	{`\brath\s*er\b`, "rather"},
	{`\bcons\s*umers\b`, "consumers"},
	{`\bcontroll\s*ing\b`, "controlling"},
	{`\bslott\s*ing\b`, "slotting"},
	{`\bsimplifyi\s*ng\b`, "simplifying"},
	{`\beffecti\s*vely\b`, "effectively"},
	{`\blisteni\s*ng\b`, "listening"},
	{`\bmaki\s*ng\b`, "making"},
	{`\btaki\s*ng\b`, "taking"},
	{`\bhavi\s*ng\b`, "having"},
	{`\bgivi\s*ng\b`, "giving"},
	{`\busi\s*ng\b`, "using"},
	{`\bmeani\s*ng\b`, "meaning"},
	{`\bbec\s*ause\b`, "because"},
	{`\bmes\s*sage\b`, "message"},
	{`\baff\s*ect\b`, "affect"},
	{`\bspe\s*cific\b`, "specific"},
	{`\bdiffi\s*cult\b`, "difficult"},
	{`\bsemi\s*nar\b`, "seminar"},
	{`\binformati\s*on\b`, "information"},
	{`\brel\s*y\b`, "rely"},
	{`\bYo\s*ucan\b`, "You can"},
	{`\bwit\s*htheir\b`, "with their"},
	{`\bwit\s*hout\b`, "without"},
	{`\bwhi\s*ch\b`, "which"},
	{`\bmone\s*y\b`, "money"},
	{`\bsho\s*uld\b`, "should"},
	{`\bcou\s*ld\b`, "could"},
	{`\bwou\s*ld\b`, "would"},
	{`\ba\s+re\s+based\b`, "are based"},
	{`\bsteppings\s*tones\b`, "steppingstones"},
	{`\btriggerne\s*w\b`, "trigger new"},
	{`\bveryoutlandish\b`, "very outlandish"},
	{`\blisteni\s*ngand\b`, "listening and"},
	{`\bwhi\s*chmay\b`, "which may"},
	{`\bsimplifyi\s*ngexisting\b`, "simplifying existing"},
	{`\brath\s*erthan\b`, "rather than"},
	{`\bciv\s*illitigation\b`, "civil litigation"},

	// Doubled-consonant -ing splits.
	{`\bkee\s*ping\b`, "keeping"},
	{`\bsel\s*ling\b`, "selling"},
	{`\btel\s*ling\b`, "telling"},
	{`\bgett\s*ing\b`, "getting"},
	{`\bsett\s*ing\b`, "setting"},
	{`\blett\s*ing\b`, "letting"},
	{`\bputt\s*ing\b`, "putting"},
	{`\bcutt\s*ing\b`, "cutting"},
	{`\bhitt\s*ing\b`, "hitting"},
	{`\bsitt\s*ing\b`, "sitting"},
	{`\binfor\s*mation\b`, "information"},
	{`\beffici\s*ent\b`, "efficient"},
	{`\beffici\s*ency\b`, "efficiency"},
	{`\bsuffi\s*cient\b`, "sufficient"},
	{`\bdefici\s*ent\b`, "deficient"},

	// Trailing -y splits.
	{`\bprofitabilit\s*y\b`, "profitability"},
	{`\babilit\s*y\b`, "ability"},
	{`\bqualit\s*y\b`, "quality"},
	{`\bliabilit\s*y\b`, "liability"},
	{`\bfacilit\s*y\b`, "facility"},
	{`\bflexibilit\s*y\b`, "flexibility"},
	{`\bresponsibilit\s*y\b`, "responsibility"},
	{`\bquantit\s*y\b`, "quantity"},
	{`\bactivit\s*y\b`, "activity"},
	{`\brealit\s*y\b`, "reality"},
	{`\bvariet\s*y\b`, "variety"},
	{`\bcurrenc\s*y\b`, "currency"},
	{`\bpolic\s*y\b`, "policy"},
	{`\bphilosoph\s*y\b`, "philosophy"},
	{`\bentiret\s*y\b`, "entirety"},
	{`\bhonest\s*y\b`, "honesty"},
	{`\bwarrant\s*y\b`, "warranty"},
	{`\bquickl\s*y\b`, "quickly"},
	{`\blikel\s*y\b`, "likely"},
	{`\bpositivel\s*y\b`, "positively"},
	{`\binitiall\s*y\b`, "initially"},
	{`\bstrictl\s*y\b`, "strictly"},
	{`\bsimilarl\s*y\b`, "similarly"},
	{`\bfriendl\s*y\b`, "friendly"},
	{`\bnecessar\s*y\b`, "necessary"},
	{`\bhorsepla\s*y\b`, "horseplay"},
	{`\bhapp\s*y\b`, "happy"},
	{`\bjul\s*y\b`, "july"},
	{`\bvar\s*y\b`, "vary"},

	// Trailing consonant splits.
	{`\bstrategi\s*c\b`, "strategic"},
	{`\bspecifi\s*c\b`, "specific"},
	{`\bethi\s*c\b`, "ethic"},
	{`\bvie\s*w\b`, "view"},
	{`\bfollo\s*w\b`, "follow"},
	{`\bhersel\s*f\b`, "herself"},
	{`\byoursel\s*f\b`, "yourself"},

	// Compound splits seen in the corpus.
	{`\brightha\s*nd\b`, "righthand"},
	{`\bcleanai\s*r\b`, "clean air"},
	{`\banden\s*d\b`, "and end"},
	{`\bandh\s*e\b`, "and he"},
	{`\bthewa\s*y\b`, "the way"},
	{`\bhisbo\s*ss\b`, "his boss"},
	{`\bnationalla\s*w\b`, "national law"},
	{`\bpowerfulwa\s*y\b`, "powerful way"},
	{`\binformationma\s*y\b`, "information may"},
	{`\bhelpyo\s*u\b`, "help you"},
	{`\buseshi\s*gh\b`, "uses high"},
	{`\briverlogi\s*c\b`, "riverlogic"},

	// -ity stem splits.
	{`\btangibil\s*ity\b`, "tangibility"},
	{`\bintegr\s*ity\b`, "integrity"},
	{`\bliabil\s*ity\b`, "liability"},
	{`\bcommun\s*ity\b`, "community"},
	{`\bhospital\s*ity\b`, "hospitality"},
	{`\bfacil\s*ity\b`, "facility"},
	{`\bequ\s*ity\b`, "equity"},
	{`\bviabil\s*ity\b`, "viability"},
	{`\bresponsibil\s*ity\b`, "responsibility"},
	{`\bcapabil\s*ity\b`, "capability"},
	{`\bpossibil\s*ity\b`, "possibility"},
	{`\bstabil\s*ity\b`, "stability"},
	{`\bvisibil\s*ity\b`, "visibility"},
	{`\bflexibil\s*ity\b`, "flexibility"},
	{`\bcredibil\s*ity\b`, "credibility"},
	{`\bdurabil\s*ity\b`, "durability"},
	{`\bavailabil\s*ity\b`, "availability"},
	{`\baccountabil\s*ity\b`, "accountability"},
	{`\breliabil\s*ity\b`, "reliability"},
	{`\bsustainabil\s*ity\b`, "sustainability"},

	// Run-ons split after the first letter.
	{`\byo\s*ucan\b`, "you can"},
	{`\by\s*ouachieve\b`, "you achieve"},
	{`\by\s*ouhave\b`, "you have"},
	{`\by\s*oushould\b`, "you should"},
	{`\by\s*ounext\b`, "you next"},
	{`\byo\s*uare\b`, "you are"},
	{`\bt\s*ocalculate\b`, "to calculate"},
	{`\bt\s*oinfluence\b`, "to influence"},
	{`\bt\s*ocheck\b`, "to check"},
	{`\bo\s*wnstore\b`, "own store"},
	{`\bo\s*wnideas\b`, "own ideas"},
	{`\bo\s*raffect\b`, "or affect"},
	{`\bo\s*fcompetitors\b`, "of competitors"},
	{`\bo\s*ffinancial\b`, "of financial"},
	{`\bo\s*fnegotiating\b`, "of negotiating"},
	{`\bo\s*nanyone\b`, "on anyone"},
	{`\bb\s*eexperts\b`, "be experts"},
	{`\bb\s*ylogical\b`, "by logical"},
	{`\bb\s*ycombining\b`, "by combining"},
	{`\bb\s*utdaily\b`, "but daily"},
	{`\bb\s*yfollowing\b`, "by following"},
	{`\bb\s*eviewed\b`, "be viewed"},
	{`\bb\s*ymultiplying\b`, "by multiplying"},
	{`\bs\s*etassumptions\b`, "set assumptions"},
	{`\bs\s*othey\b`, "so they"},
	{`\bf\s*argreater\b`, "far greater"},
	{`\bf\s*ewquestions\b`, "few questions"},
	{`\bho\s*wclosely\b`, "how closely"},
	{`\bw\s*eall\b`, "we all"},
	{`\bj\s*obapplicant\b`, "job applicant"},
	{`\bx\s*yzgrocery\b`, "xyz grocery"},
	{`\bda\s*ysago\b`, "days ago"},
	{`\bd\s*aycare\b`, "daycare"},
	{`\ban\s*y\b`, "any"},
	{`\bcantr\s*y\b`, "can try"},
	{`\bsinc\s*ey\b`, "since y"},
	{`\bcall\s*y\b`, "cally"},

	// Explanation-section splits.
	{`\bnego\s*tiates\b`, "negotiates"},
	{`\bnego\s*tiate\b`, "negotiate"},
	{`\bnego\s*tiation\b`, "negotiation"},
	{`\bals\s*oallow\b`, "also allow"},
	{`\bals\s*o\b`, "also"},
	{`\ban\s*dsearch\b`, "and search"},
	{`\band\s*earch\b`, "and search"},
	{`\bpurchas\s*ing\b`, "purchasing"},
	{`\bpublish\s*ing\b`, "publishing"},
	{`\bresignati\s*on\b`, "resignation"},

	// Negation run-ons.
	{`\bthey\s*als\s*o\b`, "they also"},
	{`\bwe\s*do\s*not\b`, "we do not"},
	{`\bwould\s*not\b`, "would not"},
	{`\bcould\s*not\b`, "could not"},
	{`\bshould\s*not\b`, "should not"},
	{`\bdoes\s*not\b`, "does not"},
	{`\bdid\s*not\b`, "did not"},
	{`\bwill\s*not\b`, "will not"},
	{`\bcan\s*not\b`, "cannot"},
	{`\bwhichs\s*/\s*he\b`, "which s/he"},
	{`\breprimand\s*orfire\b`, "reprimand or fire"},
	{`\borfire\b`, "or fire"},

	// Words fused with a following "the".
	{`\boutsi\s*dethe\b`, "outside the"},
	{`\binsi\s*dethe\b`, "inside the"},
	{`\bunderstandthe\b`, "understand the"},
	{`\bdeterminethe\b`, "determine the"},
	{`\bincreasethe\b`, "increase the"},
	{`\bdecreasethe\b`, "decrease the"},
	{`\bimprovethe\b`, "improve the"},
	{`\breducethe\b`, "reduce the"},
	{`\bachievethe\b`, "achieve the"},
	{`\breceivethe\b`, "receive the"},
	{`\bprovidethe\b`, "provide the"},
	{`\brequirethe\b`, "require the"},
	{`\bdescribethe\b`, "describe the"},
	{`\bfollowthe\b`, "follow the"},
	{`\benterthe\b`, "enter the"},
	{`\bexitthe\b`, "exit the"},
	{`\bwiththe\b`, "with the"},
	{`\bforthe\b`, "for the"},
	{`\bfromthe\b`, "from the"},
	{`\btothe\b`, "to the"},
	{`\bofthe\b`, "of the"},
	{`\binthe\b`, "in the"},
	{`\bonthe\b`, "on the"},
	{`\batthe\b`, "at the"},
	{`\bbythe\b`, "by the"},
	{`\basthe\b`, "as the"},
	{`\bandthe\b`, "and the"},
	{`\borthe\b`, "or the"},
	{`\bbutthe\b`, "but the"},
	{`\bifthe\b`, "if the"},
	{`\bwhenthe\b`, "when the"},
	{`\bwherethe\b`, "where the"},
	{`\bwhilethe\b`, "while the"},
	{`\bbeforethe\b`, "before the"},
	{`\bafterthe\b`, "after the"},
	{`\baboutthe\b`, "about the"},
	{`\bacrossthe\b`, "across the"},
	{`\bagainstthe\b`, "against the"},
	{`\bduringthe\b`, "during the"},
	{`\bbetweenthe\b`, "between the"},
	{`\bthroughthe\b`, "through the"},
	{`\bunderthe\b`, "under the"},
	{`\boverthe\b`, "over the"},
	{`\bintothea\b`, "into the"},

	// More short splits.
	{`\bthe\s*re\b`, "there"},
	{`\bmo\s*re\b`, "more"},
	{`\bwhe\s*re\b`, "where"},
	{`\bthe\s*se\b`, "these"},
	{`\bthe\s*ir\b`, "their"},
	{`\bthe\s*y\b`, "they"},
	{`\bthe\s*m\b`, "them"},
	{`\bthe\s*n\b`, "then"},
	{`\bwhe\s*n\b`, "when"},
	{`\bwit\s*h\b`, "with"},
	{`\bth\s*at\b`, "that"},
	{`\bth\s*is\b`, "this"},
	{`\bfro\s*m\b`, "from"},
	{`\bint\s*o\b`, "into"},
	{`\bont\s*o\b`, "onto"},
	{`\babo\s*ut\b`, "about"},

	// Sentence run-ons: lowercase letter glued to a capitalized word.
	{`\b([a-z])The\b`, "$1 The"},
	{`\b([a-z])This\b`, "$1 This"},
	{`\b([a-z])It\b`, "$1 It"},
	{`\b([a-z])If\b`, "$1 If"},
	{`\b([a-z])When\b`, "$1 When"},
	{`\b([a-z])However\b`, "$1 However"},
	{`\b([a-z])Therefore\b`, "$1 Therefore"},
	{`\b([a-z])For\b`, "$1 For"},
	{`\b([a-z])As\b`, "$1 As"},

	// -ation splits.
	{`\borganiz\s*ation\b`, "organization"},
	{`\binform\s*ation\b`, "information"},
	{`\bcommuni\s*cation\b`, "communication"},
	{`\bpresent\s*ation\b`, "presentation"},
	{`\bdocument\s*ation\b`, "documentation"},
	{`\bimplementa\s*tion\b`, "implementation"},
	{`\bregistr\s*ation\b`, "registration"},
	{`\bconsider\s*ation\b`, "consideration"},
	{`\bevalua\s*tion\b`, "evaluation"},
	{`\bnegocia\s*tion\b`, "negotiation"},
	{`\bnegocia\s*tions\b`, "negotiations"},
	{`\bdemonstrat\s*ion\b`, "demonstration"},
	{`\bcompensa\s*tion\b`, "compensation"},
	{`\btransport\s*ation\b`, "transportation"},
	{`\bclassifica\s*tion\b`, "classification"},
	{`\brecommend\s*ation\b`, "recommendation"},
	{`\bexplana\s*tion\b`, "explanation"},

	// -ating splits.
	{`\bdemonstrat\s*ing\b`, "demonstrating"},
	{`\bparticipat\s*ing\b`, "participating"},
	{`\bcommunicat\s*ing\b`, "communicating"},
	{`\bnegotiat\s*ing\b`, "negotiating"},
	{`\breveal\s*ing\b`, "revealing"},
	{`\bincorporat\s*ing\b`, "incorporating"},
	{`\billustr\s*ating\b`, "illustrating"},

	// -ment splits.
	{`\bmanage\s*ment\b`, "management"},
	{`\bdevelop\s*ment\b`, "development"},
	{`\benviron\s*ment\b`, "environment"},
	{`\bequip\s*ment\b`, "equipment"},
	{`\bdocu\s*ment\b`, "document"},
	{`\bstate\s*ment\b`, "statement"},
	{`\binvest\s*ment\b`, "investment"},
	{`\brequire\s*ment\b`, "requirement"},
	{`\bachieve\s*ment\b`, "achievement"},
	{`\bemploy\s*ment\b`, "employment"},
	{`\bassess\s*ment\b`, "assessment"},
	{`\badvance\s*ment\b`, "advancement"},
	{`\bagree\s*ment\b`, "agreement"},
	{`\bpay\s*ment\b`, "payment"},
	{`\bship\s*ment\b`, "shipment"},
	{`\btreat\s*ment\b`, "treatment"},
	{`\bdepart\s*ment\b`, "department"},
	{`\breplace\s*ment\b`, "replacement"},
	{`\bsettle\s*ment\b`, "settlement"},

	// -ness splits.
	{`\bbusi\s*ness\b`, "business"},
	{`\baware\s*ness\b`, "awareness"},
	{`\beffective\s*ness\b`, "effectiveness"},
	{`\bwilling\s*ness\b`, "willingness"},
	{`\bfair\s*ness\b`, "fairness"},
	{`\bweak\s*ness\b`, "weakness"},
	{`\bopen\s*ness\b`, "openness"},
	{`\bhappy\s*ness\b`, "happiness"},

	// -ity splits.
	{`\bresponsibil\s*ity\b`, "responsibility"},
	{`\bopportun\s*ity\b`, "opportunity"},
	{`\bactiv\s*ity\b`, "activity"},
	{`\bqual\s*ity\b`, "quality"},
	{`\bquant\s*ity\b`, "quantity"},
	{`\babil\s*ity\b`, "ability"},
	{`\bsecur\s*ity\b`, "security"},
	{`\bauthor\s*ity\b`, "authority"},
	{`\bperson\s*ality\b`, "personality"},
	{`\bflex\s*ibility\b`, "flexibility"},

	// -ally splits.
	{`\bbasic\s*ally\b`, "basically"},
	{`\bessential\s*ly\b`, "essentially"},
	{`\bprofession\s*ally\b`, "professionally"},
	{`\bperson\s*ally\b`, "personally"},
	{`\bfinanci\s*ally\b`, "financially"},
	{`\btypic\s*ally\b`, "typically"},
	{`\bspecific\s*ally\b`, "specifically"},
	{`\belectric\s*ally\b`, "electrically"},

	// Pronoun+verb run-ons.
	{`\byouwill\b`, "you will"},
	{`\byoucan\b`, "you can"},
	{`\byoumay\b`, "you may"},
	{`\byoumight\b`, "you might"},
	{`\byoushould\b`, "you should"},
	{`\byouwould\b`, "you would"},
	{`\byoucould\b`, "you could"},
	{`\byouhave\b`, "you have"},
	{`\byouare\b`, "you are"},
	{`\btheywill\b`, "they will"},
	{`\btheycan\b`, "they can"},
	{`\btheymay\b`, "they may"},
	{`\btheyhave\b`, "they have"},
	{`\btheyare\b`, "they are"},
	{`\bwewill\b`, "we will"},
	{`\bwecan\b`, "we can"},
	{`\bwemay\b`, "we may"},
	{`\bwehave\b`, "we have"},
	{`\bweare\b`, "we are"},
	{`\bitwill\b`, "it will"},
	{`\bitcan\b`, "it can"},
	{`\bitmay\b`, "it may"},
	{`\bitis\b`, "it is"},
	{`\bitwas\b`, "it was"},
	{`\bpreventrisk\b`, "prevent risk"},

	// Rejoin hyphenated words broken after the hyphen.
	{`(\w)-\s+(\w)`, "$1-$2"},
}
