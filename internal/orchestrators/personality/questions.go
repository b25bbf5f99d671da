package personality

// Trait tags carried by answer options, tallied for the result comment.
const (
	TraitAggressive = "aggressive"
	TraitDefensive  = "defensive"
	TraitBalanced   = "balanced"
	TraitSpeed      = "speed"
	TraitSpecial    = "special"
)

// Question IDs in hash order. The order is load bearing: each question
// is paired with a fixed prime when computing the personality type ID.
const (
	QuestionEnergy        = "energy"
	QuestionSocial        = "social"
	QuestionDecision      = "decision"
	QuestionLifestyle     = "lifestyle"
	QuestionValues        = "values"
	QuestionStress        = "stress"
	QuestionHobby         = "hobby"
	QuestionCommunication = "communication"
	QuestionGoal          = "goal"
	QuestionEnvironment   = "environment"
)

// Option is one selectable answer with its hash weight and trait tag
type Option struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Weight int    `json:"-"`
	Trait  string `json:"-"`
}

// Question is one quiz entry
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"question"`
	Options []Option `json:"options"`
}

// Answers maps question IDs to the chosen option value
type Answers map[string]string

var questions = []Question{
	{
		ID:     QuestionEnergy,
		Prompt: "休日の過ごし方は？",
		Options: []Option{
			{Value: "active", Label: "アクティブに活動する", Weight: 1, Trait: TraitAggressive},
			{Value: "relax", Label: "のんびりと過ごす", Weight: 2, Trait: TraitDefensive},
			{Value: "balance", Label: "バランスよく過ごす", Weight: 3, Trait: TraitBalanced},
			{Value: "adventure", Label: "新しいことに挑戦する", Weight: 4, Trait: TraitSpeed},
		},
	},
	{
		ID:     QuestionSocial,
		Prompt: "人との関わり方は？",
		Options: []Option{
			{Value: "leader", Label: "リーダーシップを取る", Weight: 1, Trait: TraitAggressive},
			{Value: "supporter", Label: "サポート役を好む", Weight: 2, Trait: TraitDefensive},
			{Value: "team", Label: "チームで協力する", Weight: 3, Trait: TraitBalanced},
			{Value: "independent", Label: "一人で行動する", Weight: 4, Trait: TraitSpeed},
		},
	},
	{
		ID:     QuestionDecision,
		Prompt: "重要な決断をする時は？",
		Options: []Option{
			{Value: "quick", Label: "素早く決断する", Weight: 1, Trait: TraitSpeed},
			{Value: "careful", Label: "慎重に考える", Weight: 2, Trait: TraitDefensive},
			{Value: "intuitive", Label: "直感で決める", Weight: 3, Trait: TraitAggressive},
			{Value: "analyze", Label: "じっくり分析する", Weight: 4, Trait: TraitSpecial},
		},
	},
	{
		ID:     QuestionLifestyle,
		Prompt: "理想の生活スタイルは？",
		Options: []Option{
			{Value: "challenge", Label: "チャレンジングな毎日", Weight: 1, Trait: TraitAggressive},
			{Value: "stable", Label: "安定した生活", Weight: 2, Trait: TraitDefensive},
			{Value: "variety", Label: "変化に富んだ生活", Weight: 3, Trait: TraitSpeed},
			{Value: "balanced", Label: "バランスの取れた生活", Weight: 4, Trait: TraitBalanced},
		},
	},
	{
		ID:     QuestionValues,
		Prompt: "最も大切にしていることは？",
		Options: []Option{
			{Value: "strength", Label: "強さ・実力", Weight: 1, Trait: TraitAggressive},
			{Value: "safety", Label: "安全・安定", Weight: 2, Trait: TraitDefensive},
			{Value: "speed", Label: "スピード・効率", Weight: 3, Trait: TraitSpeed},
			{Value: "wisdom", Label: "知恵・知識", Weight: 4, Trait: TraitSpecial},
			{Value: "harmony", Label: "調和・バランス", Weight: 5, Trait: TraitBalanced},
		},
	},
	{
		ID:     QuestionStress,
		Prompt: "ストレスを感じた時の対処法は？",
		Options: []Option{
			{Value: "fight", Label: "正面から向き合う", Weight: 1, Trait: TraitAggressive},
			{Value: "defend", Label: "身を守る", Weight: 2, Trait: TraitDefensive},
			{Value: "escape", Label: "一時的に距離を置く", Weight: 3, Trait: TraitSpeed},
			{Value: "think", Label: "冷静に分析する", Weight: 4, Trait: TraitSpecial},
			{Value: "adapt", Label: "柔軟に対応する", Weight: 5, Trait: TraitBalanced},
		},
	},
	{
		ID:     QuestionHobby,
		Prompt: "趣味や好きなことは？",
		Options: []Option{
			{Value: "sports", Label: "スポーツ・運動", Weight: 1, Trait: TraitAggressive},
			{Value: "reading", Label: "読書・勉強", Weight: 2, Trait: TraitSpecial},
			{Value: "creative", Label: "創作活動", Weight: 3, Trait: TraitBalanced},
			{Value: "travel", Label: "旅行・冒険", Weight: 4, Trait: TraitSpeed},
			{Value: "relax", Label: "リラックス・休息", Weight: 5, Trait: TraitDefensive},
		},
	},
	{
		ID:     QuestionCommunication,
		Prompt: "コミュニケーションの取り方は？",
		Options: []Option{
			{Value: "direct", Label: "直接的にはっきりと", Weight: 1, Trait: TraitAggressive},
			{Value: "careful", Label: "慎重に言葉を選ぶ", Weight: 2, Trait: TraitDefensive},
			{Value: "quick", Label: "素早く簡潔に", Weight: 3, Trait: TraitSpeed},
			{Value: "deep", Label: "深くじっくりと", Weight: 4, Trait: TraitSpecial},
			{Value: "friendly", Label: "親しみやすく", Weight: 5, Trait: TraitBalanced},
		},
	},
	{
		ID:     QuestionGoal,
		Prompt: "人生の目標は？",
		Options: []Option{
			{Value: "success", Label: "成功・達成", Weight: 1, Trait: TraitAggressive},
			{Value: "peace", Label: "平穏・安定", Weight: 2, Trait: TraitDefensive},
			{Value: "growth", Label: "成長・向上", Weight: 3, Trait: TraitSpeed},
			{Value: "knowledge", Label: "知識・理解", Weight: 4, Trait: TraitSpecial},
			{Value: "balance", Label: "バランス・調和", Weight: 5, Trait: TraitBalanced},
		},
	},
	{
		ID:     QuestionEnvironment,
		Prompt: "理想の環境は？",
		Options: []Option{
			{Value: "competitive", Label: "競争的な環境", Weight: 1, Trait: TraitAggressive},
			{Value: "safe", Label: "安全で守られた環境", Weight: 2, Trait: TraitDefensive},
			{Value: "dynamic", Label: "動的で変化のある環境", Weight: 3, Trait: TraitSpeed},
			{Value: "quiet", Label: "静かで落ち着いた環境", Weight: 4, Trait: TraitSpecial},
			{Value: "harmonious", Label: "調和の取れた環境", Weight: 5, Trait: TraitBalanced},
		},
	},
}

// Questions returns the fixed ten-question set in hash order
func Questions() []Question {
	return questions
}

func findOption(q Question, value string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}
