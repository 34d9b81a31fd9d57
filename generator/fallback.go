package generator

import (
	"strings"

	"illustrated_research_writer/language"
)

// topicMarker is the single substitution point in every fallback template.
const topicMarker = "{{topic}}"

// fallbackTemplates are served when no model is configured or the model fails.
var fallbackTemplates = map[language.Code]string{
	language.Arabic: `# {{topic}}

## مقدمة
{{topic}} موضوع مهم يستحق الدراسة والبحث. سنستكشف في هذا البحث الجوانب المختلفة لهذا الموضوع.

[IMAGE_PLACEHOLDER_1]

## القسم الأول: التعريف والأساسيات
هذا القسم يتناول الأساسيات والتعريفات المهمة المتعلقة بـ {{topic}}.

## القسم الثاني: التطبيقات والاستخدامات
يركز هذا القسم على التطبيقات العملية والاستخدامات المتنوعة.

[IMAGE_PLACEHOLDER_2]

## القسم الثالث: التحديات والمستقبل
نناقش هنا التحديات الحالية والتوقعات المستقبلية.

## خاتمة
في الختام، {{topic}} موضوع متنوع وغني بالمعلومات المفيدة.`,

	language.English: `# {{topic}}

## Introduction
{{topic}} is an important subject that deserves study and research. We will explore different aspects of this topic.

[IMAGE_PLACEHOLDER_1]

## Section 1: Definition and Basics
This section covers the basics and important definitions related to {{topic}}.

## Section 2: Applications and Uses
This section focuses on practical applications and various uses.

[IMAGE_PLACEHOLDER_2]

## Section 3: Challenges and Future
Here we discuss current challenges and future expectations.

## Conclusion
In conclusion, {{topic}} is a diverse topic rich in useful information.`,

	language.French: `# {{topic}}

## Introduction
{{topic}} est un sujet important qui mérite d'être étudié et approfondi. Nous explorerons dans cette recherche ses différents aspects.

[IMAGE_PLACEHOLDER_1]

## Section 1 : Définition et notions de base
Cette section présente les notions de base et les définitions importantes liées à {{topic}}.

## Section 2 : Applications et usages
Cette section porte sur les applications pratiques et les usages variés.

[IMAGE_PLACEHOLDER_2]

## Section 3 : Défis et perspectives
Nous abordons ici les défis actuels et les perspectives d'avenir.

## Conclusion
En conclusion, {{topic}} est un sujet riche et varié en informations utiles.`,
}

// FallbackDocument returns the canned document for lang with topic filled in.
// The result depends only on its arguments.
func FallbackDocument(topic string, lang language.Code) string {
	tmpl := fallbackTemplates[lang.Or(language.Arabic)]
	return strings.ReplaceAll(tmpl, topicMarker, topic)
}
