package generator

import (
	"fmt"
	"regexp"
	"strconv"

	"illustrated_research_writer/language"
)

const (
	minSlot = 1
	maxSlot = 5
)

// placeholderRe matches [IMAGE_PLACEHOLDER_n] and the bare IMAGE_PLACEHOLDER_n
// some models emit. The slot range is checked after matching.
var placeholderRe = regexp.MustCompile(`\[IMAGE_PLACEHOLDER_(\d+)\]|\bIMAGE_PLACEHOLDER_(\d+)\b`)

var slotBlockRe = regexp.MustCompile(`<div class="image-placeholder" id="image-slot-(\d+)"`)

type slotText struct {
	title string
	body  string
}

var slotTexts = map[language.Code]slotText{
	language.Arabic:  {title: "مكان مخصص للصورة رقم %d", body: "ضع الصورة رقم %d هنا"},
	language.English: {title: "Image slot number %d", body: "Place image %d here"},
	language.French:  {title: "Emplacement pour l'image numéro %d", body: "Placez l'image %d ici"},
}

// ResolvePlaceholders replaces every image token for slots 1..5 with a display
// block. Other tokens are left as they are.
func ResolvePlaceholders(content string, lang language.Code) string {
	text := slotTexts[lang.Or(language.Arabic)]
	return placeholderRe.ReplaceAllStringFunc(content, func(token string) string {
		m := placeholderRe.FindStringSubmatch(token)
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < minSlot || n > maxSlot {
			return token
		}
		return slotBlock(n, text)
	})
}

func slotBlock(n int, text slotText) string {
	return fmt.Sprintf(
		`<div class="image-placeholder" id="image-slot-%d" data-slot-number="%d" title="%s"><i class="fas fa-image mr-2 ml-2"></i><span class="placeholder-text">%s</span></div>`,
		n, n, fmt.Sprintf(text.title, n), fmt.Sprintf(text.body, n),
	)
}

// CountPlaceholderTokens counts tokens ResolvePlaceholders would replace.
func CountPlaceholderTokens(content string) int {
	count := 0
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= minSlot && n <= maxSlot {
			count++
		}
	}
	return count
}

// CountPlaceholderBlocks counts resolved display blocks in content.
func CountPlaceholderBlocks(content string) int {
	return len(slotBlockRe.FindAllStringIndex(content, -1))
}

// PlaceholderSlots lists the distinct slot numbers of resolved blocks in order
// of first appearance.
func PlaceholderSlots(content string) []int {
	seen := make(map[int]bool)
	slots := []int{}
	for _, m := range slotBlockRe.FindAllStringSubmatch(content, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || seen[n] {
			continue
		}
		seen[n] = true
		slots = append(slots, n)
	}
	return slots
}
