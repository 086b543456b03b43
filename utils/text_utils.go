package utils

import (
	"regexp"
	"strings"
)

// 한글 조사 선택과 오행 표기 정리를 위한 텍스트 유틸리티.
// 추천 메시지는 전부 한국어라서 받침 유무에 따라 조사가 달라진다

var hanjaParen = regexp.MustCompile(`\([^)]*\)`)

// StripHanja "목(木)" 형태에서 괄호 한자 표기를 제거해 "목"을 반환
func StripHanja(s string) string {
	return strings.TrimSpace(hanjaParen.ReplaceAllString(s, ""))
}

// lastHangul 문자열에서 마지막 한글 음절을 찾는다. 없으면 0을 반환
func lastHangul(word string) rune {
	var last rune
	for _, r := range word {
		if r >= 0xAC00 && r <= 0xD7A3 {
			last = r
		}
	}
	return last
}

// HasBatchim 마지막 한글 음절에 받침이 있는지 여부
func HasBatchim(word string) bool {
	r := lastHangul(word)
	if r == 0 {
		return false
	}
	return (r-0xAC00)%28 != 0
}

// AndParticle 접속 조사 "과"/"와"를 고른다
func AndParticle(word string) string {
	if HasBatchim(word) {
		return "과"
	}
	return "와"
}

// ObjectParticle 목적격 조사 "을"/"를"을 고른다
func ObjectParticle(word string) string {
	if HasBatchim(word) {
		return "을"
	}
	return "를"
}

// InstrumentalParticle 조사 "으로"/"로"를 고른다. ㄹ 받침은 "로"를 쓴다
func InstrumentalParticle(word string) string {
	r := lastHangul(word)
	if r == 0 {
		return "로"
	}
	final := (r - 0xAC00) % 28
	if final == 0 || final == 8 { // 받침 없음 또는 ㄹ 받침
		return "로"
	}
	return "으로"
}

// JoinWithAnd 목록을 "A, B와 C" 형태로 잇는다. 조사는 앞 단어의 받침을 따른다
func JoinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	head := strings.Join(items[:len(items)-1], ", ")
	connector := AndParticle(items[len(items)-2])
	return head + connector + " " + items[len(items)-1]
}

// DeduplicateSlice 문자열 목록에서 공백을 정리하고 중복을 제거한다
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}
