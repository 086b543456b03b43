package saju

import (
	"fmt"
	"strings"

	"saju_food_chat/utils"
)

// Recommendation 오행 분석 결과로 만든 안내 문구와 기계 소비용 오행 목록.
// 문구는 채팅 컴포넌트가 그대로 내보내고, 목록은 식당 추천 필터링에 쓰인다
type Recommendation struct {
	Headline    string
	Advice      string
	Lacking     []string // 부족한 오행 한글(한자) 표기
	Strong      []string // 강한 오행 한글(한자) 표기
	Suppressors []string // 강한 오행을 눌러주는 상극 오행 표기
}

// Recommend 분류 결과에서 헤드라인/조언 문구를 만든다.
// 잘 구성된 Classification에 대해 절대 실패하지 않는다
func Recommend(c Classification) Recommendation {
	rec := Recommendation{
		Lacking:     KoreanNames(c.Lacking),
		Strong:      KoreanNames(c.Strong),
		Suppressors: KoreanNames(c.Suppressors),
	}

	switch c.Category {
	case CategoryBalanced:
		rec.Headline, rec.Advice = balancedMessage(c)
	default:
		rec.Headline = unbalancedHeadline(c)
		rec.Advice = unbalancedAdvice(c)
	}
	return rec
}

// balancedMessage 균형 사주: 단일 최약/최강 오행 중 20% 기준에서 더 멀리
// 벗어난 쪽을 헤드라인의 초점으로 삼는다
func balancedMessage(c Classification) (headline, advice string) {
	if len(c.Lacking) != 1 || len(c.Strong) != 1 || c.Lacking[0] == c.Strong[0] {
		// 완전 균등(동률) 또는 퇴화 입력
		headline = "오행이 고르게 균형을 이루고 있어."
		advice = "오늘은 어떤 기운의 음식을 먹어도 잘 받는 날이야. 먹고 싶은 메뉴를 즐겨봐!"
		return headline, advice
	}

	weak := c.Lacking[0]
	strong := c.Strong[0]
	weakDev := 20.0 - c.Profile[weak]
	strongDev := c.Profile[strong] - 20.0

	if weakDev >= strongDev {
		example := FoodExample(weak)
		headline = fmt.Sprintf("오행이 대체로 균형을 이루고 있어. 다만 %s 기운이 조금 약한 편이야.", weak.Korean())
		advice = fmt.Sprintf("가볍게 %s 기운을 더하고 싶다면 %s%s 함께하면 좋아.",
			weak.Korean(), example, utils.AndParticle(example))
	} else {
		suppressor := strong.Suppressor()
		headline = fmt.Sprintf("오행이 대체로 균형을 이루고 있어. 다만 %s 기운이 조금 강한 편이야.", strong.Korean())
		advice = fmt.Sprintf("%s 기운의 음식(%s)을 곁들이면 넘치는 %s 기운을 부드럽게 다듬을 수 있어.",
			suppressor.Korean(), FoodExample(suppressor), strong.Korean())
	}
	return headline, advice
}

// unbalancedHeadline 무형/편중 사주: 강한 오행과 부족한 오행을 그대로 부른다
func unbalancedHeadline(c Classification) string {
	lackingStr := utils.JoinWithAnd(KoreanNames(c.Lacking))
	strongStr := utils.JoinWithAnd(KoreanNames(c.Strong))

	if c.Category == CategoryDeficient {
		return fmt.Sprintf("%s 기운이 많이 부족한 사주야.", lackingStr)
	}
	return fmt.Sprintf("%s 기운이 강하고 %s 기운이 약한 편이야.", strongStr, lackingStr)
}

// unbalancedAdvice 부족 오행 보충과 강한 오행 조절 문구를 만든다.
// 단일 부족 오행이 단일 강한 오행의 상극이면 두 문장을 하나로 합친다
func unbalancedAdvice(c Classification) string {
	// 겹침 특례: 부족한 오행 하나가 강한 오행 하나의 상극인 경우,
	// 음식 하나가 보충과 조절을 동시에 해준다
	if len(c.Lacking) == 1 && len(c.Strong) == 1 && c.Lacking[0] == c.Strong[0].Suppressor() {
		lacking := c.Lacking[0]
		strong := c.Strong[0]
		return fmt.Sprintf(
			"부족한 %s 기운은 강한 %s 기운을 조절해주는 딱 맞는 상극 오행이기도 해! %s 기운의 음식(%s)을 먹으면 부족한 기운도 채우고 넘치는 기운까지 잡을 수 있어.",
			lacking.Korean(), strong.Korean(), lacking.Korean(), FoodExample(lacking))
	}

	var parts []string

	for _, e := range c.Lacking {
		example := FoodExample(e)
		parts = append(parts, fmt.Sprintf("부족한 %s 기운은 %s%s 채우면 좋아.",
			e.Korean(), example, utils.InstrumentalParticle(example)))
	}

	if len(c.Strong) > 0 && len(c.Suppressors) > 0 {
		strongStr := utils.JoinWithAnd(KoreanNames(c.Strong))
		suppressorStr := utils.JoinWithAnd(KoreanNames(c.Suppressors))
		examples := make([]string, 0, len(c.Suppressors))
		for _, s := range c.Suppressors {
			examples = append(examples, FoodExample(s))
		}
		parts = append(parts, fmt.Sprintf("넘치는 %s 기운은 %s 기운의 음식(%s)으로 눌러줄 수 있어!",
			strongStr, suppressorStr, strings.Join(examples, " / ")))
	}

	return strings.Join(parts, " ")
}
