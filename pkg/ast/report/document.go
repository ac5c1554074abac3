package report

// Emphasis 是展示层的样式提示。
type Emphasis string

const (
	EmphasisNormal Emphasis = "normal"
	EmphasisStrong Emphasis = "strong"
)

// Level 描述标题层级。
type Level int

const (
	// LevelHeading 对应文档的主要区域（Relatório、Fundamentação 等）。
	LevelHeading Level = iota
	// LevelSubheading 对应区域内的条目（单个 Questão）。
	LevelSubheading
	// LevelNote 对应诊断性说明文字。
	LevelNote
)

// Section 是交给展示层的最小单元：标题 + 有序段落。
type Section struct {
	Title           string
	Body            []string
	Emphasis        Emphasis
	SeparatorBefore bool

	Level Level
	// Preformatted 表示正文需要原样保留空白（例如结构化转储）。
	Preformatted bool
}

// Report 是一次渲染的完整输出，章节按顺序排列。
type Report struct {
	Kind     string
	Sections []Section
}

// NewSection 创建普通强调、主标题级别的 Section，正文复制一份。
func NewSection(title string, body []string) Section {
	return Section{
		Title:    title,
		Body:     append(make([]string, 0, len(body)), body...),
		Emphasis: EmphasisNormal,
		Level:    LevelHeading,
	}
}

// Empty 判断报告是否没有任何章节。
func (r *Report) Empty() bool {
	return r == nil || len(r.Sections) == 0
}

// String 返回层级名称，用于序列化。
func (l Level) String() string {
	switch l {
	case LevelSubheading:
		return "subheading"
	case LevelNote:
		return "note"
	}
	return "heading"
}
