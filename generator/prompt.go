package generator

import (
	"fmt"

	"illustrated_research_writer/language"
)

// Prompt is the message set sent to the LLM.
type Prompt struct {
	System string
	User   string
}

// researchTemplates hold one instruction per language; %s is the topic.
var researchTemplates = map[language.Code]string{
	language.Arabic: `أنشئ بحثاً شاملاً عن موضوع "%s" باللغة العربية مُحسن لحجم ورقة A4. يجب أن يحتوي البحث على:
1. مقدمة شيقة (فقرة واحدة قصيرة)
2. ثلاثة أقسام رئيسية مع عناوين فرعية
3. خاتمة مفيدة (فقرة واحدة قصيرة)
4. النص مفصل ومفيد (حوالي 600-800 كلمة لتناسب A4)
5. استخدم تنسيق Markdown للعناوين والفقرات
6. اترك placeholders للصور: [IMAGE_PLACEHOLDER_1] و [IMAGE_PLACEHOLDER_2] في المواضع المناسبة
7. اجعل الفقرات قصيرة ومتوسطة الطول (3-4 جمل لكل فقرة)
8. اترك مساحات مناسبة بين الأقسام

اكتب البحث بأسلوب أكاديمي واضح ومفهوم مع مراعاة تخطيط الصفحة.`,

	language.English: `Create a comprehensive research paper about "%s" in English optimized for A4 page size. The research should include:
1. An engaging introduction (one short paragraph)
2. Three main sections with subheadings
3. A useful conclusion (one short paragraph)
4. Detailed and informative text (around 600-800 words to fit A4)
5. Use Markdown formatting for headings and paragraphs
6. Leave image placeholders: [IMAGE_PLACEHOLDER_1] and [IMAGE_PLACEHOLDER_2] in appropriate positions
7. Keep paragraphs short to medium length (3-4 sentences each)
8. Leave appropriate spacing between sections

Write the research in a clear academic style considering page layout.`,

	language.French: `Créez un document de recherche complet sur "%s" en français optimisé pour la taille de page A4. La recherche devrait inclure:
1. Une introduction engageante (un court paragraphe)
2. Trois sections principales avec des sous-titres
3. Une conclusion utile (un court paragraphe)
4. Texte détaillé et informatif (environ 600-800 mots pour s'adapter à A4)
5. Utilisez le formatage Markdown pour les titres et les paragraphes
6. Laissez des placeholders d'images: [IMAGE_PLACEHOLDER_1] et [IMAGE_PLACEHOLDER_2] aux positions appropriées
7. Gardez les paragraphes courts à moyens (3-4 phrases chacun)
8. Laissez des espaces appropriés entre les sections

Rédigez la recherche dans un style académique clair en considérant la mise en page.`,
}

// BuildResearchPrompt interpolates topic verbatim into the template for lang.
// Unsupported languages use the Arabic template.
func BuildResearchPrompt(topic string, lang language.Code) Prompt {
	tmpl := researchTemplates[lang.Or(language.Arabic)]
	return Prompt{User: fmt.Sprintf(tmpl, topic)}
}

// BuildTranslatePrompt asks for the topic alone, translated into target.
func BuildTranslatePrompt(topic string, target language.Code) Prompt {
	return Prompt{
		System: "You translate short research topics. Reply with the translation only, on one line, without quotes or commentary.",
		User:   fmt.Sprintf("Translate the following research topic into %s:\n%s", target.Name(), topic),
	}
}
