package document

import "strings"

// Kind is the discriminant that selects an extractor.
type Kind string

const (
	KindAnalysis Kind = "analysis"
	KindRuling   Kind = "ruling"
	KindPetition Kind = "petition"

	// KindUnknown is the zero value; any other unrecognized tag is kept verbatim.
	KindUnknown Kind = ""
)

var kindAliases = map[string]Kind{
	"analysis":        KindAnalysis,
	"analise":         KindAnalysis,
	"análise":         KindAnalysis,
	"parecer":         KindAnalysis,
	"ruling":          KindRuling,
	"sentenca":        KindRuling,
	"sentença":        KindRuling,
	"petition":        KindPetition,
	"peticao":         KindPetition,
	"petição":         KindPetition,
	"peticao_inicial": KindPetition,
	"petição_inicial": KindPetition,
	"peticao_diversa": KindPetition,
	"petição_diversa": KindPetition,
}

// ParseKind maps a kind tag to its canonical Kind. Matching ignores case and surrounding
// space. Unrecognized tags are returned trimmed, so they still read well in logs.
func ParseKind(tag string) Kind {
	trimmed := strings.TrimSpace(tag)
	if k, ok := kindAliases[strings.ToLower(trimmed)]; ok {
		return k
	}
	return Kind(trimmed)
}

// Known reports whether k is one of the kinds with a dedicated extractor.
func (k Kind) Known() bool {
	switch k {
	case KindAnalysis, KindRuling, KindPetition:
		return true
	}
	return false
}

func (k Kind) String() string {
	if k == KindUnknown {
		return "unknown"
	}
	return string(k)
}

// KnownKinds lists the kinds with a dedicated extractor, sorted.
func KnownKinds() []Kind {
	return []Kind{KindAnalysis, KindPetition, KindRuling}
}

// Natureza codes used by the document classification upstream.
const (
	NaturezaPeticaoInicial = 1
	NaturezaPeticaoDiversa = 6
	NaturezaSentenca       = 8
)

var naturezaDescriptions = map[int]string{
	0:    "Selecione o documento",
	1:    "Petição inicial",
	2:    "Contestação",
	3:    "Réplica",
	4:    "Despacho inicial",
	5:    "Despacho ordinatório",
	6:    "Petição diversa",
	7:    "Decisão interlocutória",
	8:    "Sentença",
	9:    "Embargos de declaração",
	10:   "Contra-razões",
	11:   "Recurso de Apelação",
	12:   "Procuração",
	13:   "Rol de Testemunhas",
	14:   "Contrato",
	15:   "Laudo Pericial",
	16:   "Ata de Audiência",
	17:   "Manifestação do Ministério Público",
	1000: "Autos Processuais",
}

// KindFromNatureza maps a natureza code to a Kind. Only sentenças and petições have a
// dedicated layout; every other code is KindUnknown.
func KindFromNatureza(code int) Kind {
	switch code {
	case NaturezaSentenca:
		return KindRuling
	case NaturezaPeticaoInicial, NaturezaPeticaoDiversa:
		return KindPetition
	}
	return KindUnknown
}

// MappedNaturezas lists the natureza codes that KindFromNatureza resolves to a kind.
func MappedNaturezas() []int {
	return []int{NaturezaPeticaoInicial, NaturezaPeticaoDiversa, NaturezaSentenca}
}

// NaturezaDescription returns the label for a natureza code.
func NaturezaDescription(code int) string {
	if desc, ok := naturezaDescriptions[code]; ok {
		return desc
	}
	return "Documento desconhecido"
}
