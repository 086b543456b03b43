package services

import (
	"fmt"
	"strings"

	"saju_food_chat/config"
	"saju_food_chat/saju"
	"saju_food_chat/utils"
)

// 채팅 부트스트랩 메시지 생성. LLM 대화 자체는 별도 컴포넌트가 맡고,
// 여기서는 오행 분석 결과를 대화체 문구로 풀어낸 시드 메시지만 만든다

// todayClassification 오늘 보정 프로필의 분류 결과를 가져온다
func todayClassification(cfg *config.Config, uid string) (saju.Classification, error) {
	iljin, err := TodayIljin(cfg, uid)
	if err != nil {
		return saju.Classification{}, err
	}
	return saju.Classify(scoresToProfile(iljin.TodayOhengPercentages)), nil
}

// InitialChatMessage 채팅방 입장 시 보여줄 첫 추천 메시지.
// 음식 예시는 매번 무작위로 골라 대화가 반복되어 보이지 않게 한다
func InitialChatMessage(cfg *config.Config, uid string) (string, error) {
	classification, err := todayClassification(cfg, uid)
	if err != nil {
		return "", err
	}
	return buildConciseAdvice(classification), nil
}

// buildConciseAdvice 오행 상태 기반의 짧은 추천 문구를 만든다
func buildConciseAdvice(c saju.Classification) string {
	if c.Category == saju.CategoryBalanced {
		return "오늘은 오행이 균형을 이루고 있어서 어떤 메뉴든 잘 맞아! 먹고 싶은 메뉴를 말해주면 식당까지 바로 추천해줄게 🍀"
	}

	lackingNames := saju.KoreanNames(c.Lacking)
	strongNames := saju.KoreanNames(c.Strong)
	suppressorNames := saju.KoreanNames(c.Suppressors)

	var parts []string

	// 1. 부족 오행 보충 조언
	for _, e := range c.Lacking {
		foods := strings.Join(saju.SampleFoods(e, 3), ", ")
		parts = append(parts, fmt.Sprintf("%s 기운이 약하니 %s인 %s%s 추천해.",
			e.Korean(), saju.FoodDescription(e), foods, utils.ObjectParticle(foods)))
	}

	// 2. 과다 오행 조절 조언. 부족 오행이 조절 오행을 전부 겸하면 한 문장으로 합친다
	if len(c.Strong) > 0 && len(c.Suppressors) > 0 {
		if containsAll(c.Lacking, c.Suppressors) {
			lackingStr := utils.JoinWithAnd(lackingNames)
			strongStr := utils.JoinWithAnd(strongNames)
			parts = append(parts, fmt.Sprintf(
				"특히 부족한 %s 기운은 강한 %s 기운을 조절해주는 딱 맞는 상극 오행이기도 해! 따라서 %s 기운의 음식을 먹으면 부족한 기운도 채우고, 넘치는 기운까지 잡을 수 있어 😉",
				lackingStr, strongStr, lackingStr))
		} else {
			var foods []string
			for _, e := range c.Suppressors {
				foods = append(foods, saju.SampleFoods(e, 3)...)
			}
			foodsStr := strings.Join(utils.DeduplicateSlice(foods), ", ")
			prefix := ""
			if len(parts) > 0 {
				prefix = "그리고 "
			}
			parts = append(parts, fmt.Sprintf(
				"%s강한 %s 기운은 %s 기운이 눌러줄 수 있어. 기운들이 균형을 이루게 해 줄 %s%s 추천해.",
				prefix, utils.JoinWithAnd(strongNames), utils.JoinWithAnd(suppressorNames),
				foodsStr, utils.ObjectParticle(foodsStr)))
		}
	}

	return strings.Join(parts, " ") + "<br>여기서 먹고 싶은 메뉴 하나 고르면 식당까지 바로 추천해줄게!"
}

// containsAll sub의 모든 오행이 set에 들어 있는지
func containsAll(set, sub []saju.Element) bool {
	members := make(map[saju.Element]bool, len(set))
	for _, e := range set {
		members[e] = true
	}
	for _, e := range sub {
		if !members[e] {
			return false
		}
	}
	return true
}

// OhengExplanation 오행 추천 원리를 풀어 설명하는 메시지 ("왜 이걸 추천해?")
func OhengExplanation(cfg *config.Config, uid string) (string, error) {
	classification, err := todayClassification(cfg, uid)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("오행을 기준으로 음식을 추천하고 있어!\n\n")
	b.WriteString("오행이란 세상을 다섯 가지 에너지로 나눠서 이해하는 개념이야. ")
	b.WriteString("우리의 몸도 화(火), 수(水), 목(木), 금(金), 토(土) 다섯 가지 기운으로 이루어져 있어서, 이 기운들의 밸런스를 맞춰주면 좋아.\n\n")

	if classification.Category == saju.CategoryDeficient {
		for _, e := range classification.Lacking {
			example := saju.FoodExample(e)
			b.WriteString(fmt.Sprintf("오늘은 부족한 %s 기운을 %s%s 통해 채우면 좋아. ",
				e.Korean(), example, utils.ObjectParticle(example)))
		}
		b.WriteString("\n")
	}

	if classification.Category != saju.CategoryBalanced &&
		len(classification.Strong) > 0 && len(classification.Suppressors) > 0 {
		strongStr := utils.JoinWithAnd(saju.KoreanNames(classification.Strong))
		suppressorStr := utils.JoinWithAnd(saju.KoreanNames(classification.Suppressors))
		var examples []string
		for _, e := range classification.Suppressors {
			examples = append(examples, saju.FoodExample(e))
		}
		b.WriteString(fmt.Sprintf("넘치는 %s 기운은 %s 기운의 음식(%s)으로 눌러줄 수 있어!\n",
			strongStr, suppressorStr, strings.Join(examples, " / ")))
	}

	b.WriteString("\n하지만 오행은 재미있는 가이드일 뿐이야. 언제든 다른 메뉴도 찾아줄 수 있어!🍀")
	return b.String(), nil
}
