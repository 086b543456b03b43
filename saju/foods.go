package saju

import "math/rand/v2"

// 오행별 음식 목록. 채팅 추천 메시지에서 몇 개를 골라 보여준다
var elementFoods = map[Element][]string{
	Wood: {
		"샐러드", "쌈밥", "산채비빔밥", "육회비빔밥", "샌드위치", "비빔밥", "비빔국수", "쌀국수", "수육", "보쌈", "보리밥",
	},
	Fire: {
		"떡볶이", "로제떡볶이", "김치찌개", "부대찌개", "짬뽕", "제육볶음", "닭갈비", "불고기", "양념치킨", "닭강정", "삼겹살", "피자", "마라샹궈", "마파두부", "마라탕",
	},
	Earth: {
		"된장찌개", "순두부찌개", "감자탕", "뼈해장국", "리조또", "카레", "오므라이스", "스테이크", "돈까스", "햄버거", "파스타", "우동", "김밥", "짜장면", "국밥",
	},
	Metal: {
		"치킨", "후라이드치킨", "간장치킨", "닭백숙", "순대국", "순두부", "계란찜", "소머리국밥", "탕수육", "백반", "죽", "솥밥", "순대", "삼계탕", "곰탕",
	},
	Water: {
		"초밥", "물회", "해물찜", "오징어덮밥", "새우장", "짬뽕", "우동", "라멘", "칼국수", "만두", "어묵탕", "냉면", "소바", "잔치국수", "추어탕",
	},
}

// 오행별 대표 음식 예시 문구 (결정적 — 헤드라인/조언 본문에 사용)
var elementFoodExamples = map[Element]string{
	Wood:  "샐러드, 쌈밥, 육회비빔밥 같은 신선하고 가벼운 음식",
	Fire:  "떡볶이, 김치찌개, 짬뽕 같은 매콤하고 자극적인 음식",
	Earth: "김밥, 카레라이스, 된장찌개 같은 탄수화물 중심의 든든한 음식",
	Metal: "후라이드치킨, 두부조림, 계란찜 같은 담백하고 깔끔하거나 바삭한 음식",
	Water: "초밥, 물회, 해물탕 같은 시원하고 촉촉한 음식",
}

// 오행별 음식 성격 설명
var elementFoodDescriptions = map[Element]string{
	Wood:  "상큼하고 신선한 느낌의 음식, 야채가 들어간 가벼운 메뉴",
	Fire:  "매콤하거나 자극적인 맛의 음식",
	Earth: "든든하고 안정감 있는 음식",
	Metal: "고소하고 짭짤한 맛의 음식",
	Water: "시원하고 촉촉한 느낌의 음식, 국물이나 음료류",
}

// FoodExample 오행의 대표 음식 예시 문구를 반환
func FoodExample(e Element) string {
	if s, ok := elementFoodExamples[e]; ok {
		return s
	}
	return "관련 음식"
}

// FoodDescription 오행 음식의 성격 설명을 반환
func FoodDescription(e Element) string {
	return elementFoodDescriptions[e]
}

// SampleFoods 오행 음식 목록에서 최대 count개를 무작위로 고른다.
// 채팅 메시지처럼 매번 달라도 되는 표면에서만 쓴다
func SampleFoods(e Element, count int) []string {
	foods := elementFoods[e]
	if count > len(foods) {
		count = len(foods)
	}
	picked := make([]string, 0, count)
	for _, idx := range rand.Perm(len(foods))[:count] {
		picked = append(picked, foods[idx])
	}
	return picked
}
