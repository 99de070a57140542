package catalog

import (
	"context"
	"fmt"
	"log"

	"careerparty/internal/models"
)

// Seed inserts the starter card set when the catalog is empty. Safe to call
// on every startup; an already-populated catalog is left untouched.
func Seed(ctx context.Context, repo Repository) error {
	existing, err := repo.ListJobCards(ctx, &ListJobCardsInput{})
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}

	if len(existing.Cards) > 0 {
		log.Printf("Catalog already contains %d job cards, skipping seed", len(existing.Cards))
		return nil
	}

	log.Println("Catalog is empty, inserting starter data")

	for _, card := range starterJobCards() {
		if err := repo.SaveCard(ctx, &SaveCardInput{Card: card}); err != nil {
			return fmt.Errorf("failed to seed job card %d: %w", card.ID, err)
		}
	}

	for _, card := range starterSkillCards() {
		if err := repo.SaveCard(ctx, &SaveCardInput{Card: card}); err != nil {
			return fmt.Errorf("failed to seed skill card %d: %w", card.ID, err)
		}
	}

	for _, category := range starterCategories() {
		if err := repo.SaveCategory(ctx, &SaveCategoryInput{Category: category}); err != nil {
			return fmt.Errorf("failed to seed category %d: %w", category.ID, err)
		}
	}

	for _, card := range starterMissions() {
		if err := repo.SaveCard(ctx, &SaveCardInput{Card: card}); err != nil {
			return fmt.Errorf("failed to seed mission %d: %w", card.ID, err)
		}
	}

	return nil
}

func starterJobCards() []*models.Card {
	return []*models.Card{
		{
			ID: 1, Type: models.CardTypeJob,
			NameEN:            "Software Engineer",
			NameJA:            "ソフトウェアエンジニア",
			DescriptionHTMLEN: "<p>Develops software applications and systems. Specializes in coding, debugging, and system architecture.</p>",
			DescriptionHTMLJA: "<p>ソフトウェアアプリケーションとシステムを開発します。コーディング、デバッグ、システムアーキテクチャを専門とします。</p>",
			TargetPoints:      5,
		},
		{
			ID: 2, Type: models.CardTypeJob,
			NameEN:            "Product Manager",
			NameJA:            "プロダクトマネージャー",
			DescriptionHTMLEN: "<p>Manages product development from concept to launch. Coordinates teams and defines product vision.</p>",
			DescriptionHTMLJA: "<p>コンセプトから立ち上げまでの製品開発を管理します。チームを調整し、製品ビジョンを定義します。</p>",
			TargetPoints:      6,
		},
		{
			ID: 3, Type: models.CardTypeJob,
			NameEN:            "Data Scientist",
			NameJA:            "データサイエンティスト",
			DescriptionHTMLEN: "<p>Analyzes complex data to help organizations make decisions. Uses statistics and machine learning.</p>",
			DescriptionHTMLJA: "<p>複雑なデータを分析し、組織の意思決定を支援します。統計学と機械学習を使用します。</p>",
			TargetPoints:      5,
		},
		{
			ID: 4, Type: models.CardTypeJob,
			NameEN:            "UX Designer",
			NameJA:            "UXデザイナー",
			DescriptionHTMLEN: "<p>Creates user-centered designs for digital products. Focuses on user research and interface design.</p>",
			DescriptionHTMLJA: "<p>デジタル製品のユーザー中心のデザインを作成します。ユーザーリサーチとインターフェースデザインに焦点を当てます。</p>",
			TargetPoints:      5,
		},
	}
}

func starterSkillCards() []*models.Card {
	return []*models.Card{
		{
			ID: 1, Type: models.CardTypeSkill,
			NameEN:            "Python Programming",
			NameJA:            "Pythonプログラミング",
			DescriptionHTMLEN: "<p>Proficiency in Python for backend development and data analysis.</p>",
			DescriptionHTMLJA: "<p>バックエンド開発とデータ分析のためのPython習熟度。</p>",
			MatchesJobs:       []int{1, 3},
		},
		{
			ID: 2, Type: models.CardTypeSkill,
			NameEN:            "User Research",
			NameJA:            "ユーザーリサーチ",
			DescriptionHTMLEN: "<p>Conducting interviews and surveys to understand user needs.</p>",
			DescriptionHTMLJA: "<p>ユーザーのニーズを理解するためのインタビューと調査の実施。</p>",
			MatchesJobs:       []int{2, 4},
		},
		{
			ID: 3, Type: models.CardTypeSkill,
			NameEN:            "Data Visualization",
			NameJA:            "データ可視化",
			DescriptionHTMLEN: "<p>Creating charts and dashboards to communicate insights.</p>",
			DescriptionHTMLJA: "<p>インサイトを伝えるためのチャートとダッシュボードの作成。</p>",
			MatchesJobs:       []int{3},
		},
		{
			ID: 4, Type: models.CardTypeSkill,
			NameEN:            "Agile Methods",
			NameJA:            "アジャイル手法",
			DescriptionHTMLEN: "<p>Managing projects using Scrum and Kanban methodologies.</p>",
			DescriptionHTMLJA: "<p>ScrumとKanban方法論を使用したプロジェクト管理。</p>",
			MatchesJobs:       []int{1, 2},
		},
		{
			ID: 5, Type: models.CardTypeSkill,
			NameEN:            "Prototyping",
			NameJA:            "プロトタイピング",
			DescriptionHTMLEN: "<p>Building interactive prototypes with Figma and similar tools.</p>",
			DescriptionHTMLJA: "<p>Figmaなどのツールでインタラクティブなプロトタイプを構築。</p>",
			MatchesJobs:       []int{4},
		},
		{
			ID: 6, Type: models.CardTypeSkill,
			NameEN:            "Machine Learning",
			NameJA:            "機械学習",
			DescriptionHTMLEN: "<p>Developing AI models for predictions and automation.</p>",
			DescriptionHTMLJA: "<p>予測と自動化のためのAIモデル開発。</p>",
			MatchesJobs:       []int{3},
		},
		{
			ID: 7, Type: models.CardTypeSkill,
			NameEN:            "API Design",
			NameJA:            "API設計",
			DescriptionHTMLEN: "<p>Creating RESTful and GraphQL APIs for applications.</p>",
			DescriptionHTMLJA: "<p>アプリケーション用のRESTfulおよびGraphQL APIの作成。</p>",
			MatchesJobs:       []int{1},
		},
		{
			ID: 8, Type: models.CardTypeSkill,
			NameEN:            "Market Analysis",
			NameJA:            "市場分析",
			DescriptionHTMLEN: "<p>Analyzing market trends and competitive landscapes.</p>",
			DescriptionHTMLJA: "<p>市場動向と競合環境の分析。</p>",
			MatchesJobs:       []int{2},
		},
	}
}

func starterCategories() []*models.MissionCategory {
	return []*models.MissionCategory{
		{ID: 1, NameEN: "Crisis Management", NameJA: "危機管理", DescriptionEN: "Handling unexpected issues", DescriptionJA: "予期せぬ問題への対応", SortOrder: 1},
		{ID: 2, NameEN: "Decision Making", NameJA: "意思決定", DescriptionEN: "Making strategic choices", DescriptionJA: "戦略的な選択", SortOrder: 2},
		{ID: 3, NameEN: "Communication", NameJA: "コミュニケーション", DescriptionEN: "Team coordination", DescriptionJA: "チーム調整", SortOrder: 3},
		{ID: 4, NameEN: "Resource Management", NameJA: "リソース管理", DescriptionEN: "Budget and time management", DescriptionJA: "予算と時間管理", SortOrder: 4},
	}
}

// Mission IDs start at 101 so they never collide with skill card IDs in
// a session's used-card set.
func starterMissions() []*models.Card {
	return []*models.Card{
		{
			ID: 101, Type: models.CardTypeMission,
			NameEN:            "System Down",
			NameJA:            "システムダウン",
			DescriptionHTMLEN: "<p>The main system is down during peak hours. How should the team respond?</p>",
			DescriptionHTMLJA: "<p>ピーク時にメインシステムがダウン。チームはどう対応すべきか?</p>",
			CategoryID:        1,
			TargetEN:          "Discuss crisis response strategy",
			TargetJA:          "危機対応戦略を議論",
		},
		{
			ID: 102, Type: models.CardTypeMission,
			NameEN:            "Technical Debt vs Features",
			NameJA:            "技術的負債 vs 新機能",
			DescriptionHTMLEN: "<p>Engineering wants to fix technical debt, but sales wants new features. How do you decide?</p>",
			DescriptionHTMLJA: "<p>エンジニアリングは技術的負債の修正を望み、営業は新機能を望んでいる。どう決める?</p>",
			CategoryID:        2,
			TargetEN:          "Balance technical and business needs",
			TargetJA:          "技術とビジネスのニーズをバランス",
		},
		{
			ID: 103, Type: models.CardTypeMission,
			NameEN:            "Team Alignment",
			NameJA:            "チーム調整",
			DescriptionHTMLEN: "<p>Design and engineering teams have different interpretations of requirements. How to align?</p>",
			DescriptionHTMLJA: "<p>デザインチームとエンジニアリングチームで要件の解釈が異なる。どう調整する?</p>",
			CategoryID:        3,
			TargetEN:          "Align team understanding",
			TargetJA:          "チームの理解を調整",
		},
		{
			ID: 104, Type: models.CardTypeMission,
			NameEN:            "Budget Cut",
			NameJA:            "予算削減",
			DescriptionHTMLEN: "<p>Your project budget was cut by 30%. What gets prioritized?</p>",
			DescriptionHTMLJA: "<p>プロジェクト予算が30%削減された。何を優先する?</p>",
			CategoryID:        4,
			TargetEN:          "Prioritize with constraints",
			TargetJA:          "制約下での優先順位付け",
		},
		{
			ID: 105, Type: models.CardTypeMission,
			NameEN:            "Resignation & Forced Dual Role",
			NameJA:            "退職＆強制兼任",
			DescriptionHTMLEN: "<p><strong>SPECIAL MISSION:</strong> You must resign immediately and assign your job to another player. That player now has dual responsibilities!</p>",
			DescriptionHTMLJA: "<p><strong>特別ミッション:</strong> あなたは即座に退職し、あなたの職種を別のプレイヤーに割り当てる必要があります。そのプレイヤーは二重の責任を負うことになります!</p>",
			CategoryID:        1,
			TargetEN:          "Execute resignation and job transfer",
			TargetJA:          "退職と職種移譲を実行",
			IsSpecial:         true,
		},
	}
}
