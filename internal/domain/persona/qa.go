package persona

import "fmt"

// QAEntry pairs a canonical question with its answer in every language.
// The canonical question is what gets embedded for semantic matching.
type QAEntry struct {
	Question string
	Answer   Localized
}

// QACorpus builds the curated question set from the persona facts.
// The collection is fixed and ordered; embeddings for it are computed
// lazily once per process by the semantic matcher.
func QACorpus(f *Facts) []QAEntry {
	return []QAEntry{
		{
			Question: "Where do you live?",
			Answer: Localized{
				EN: fmt.Sprintf("I live in Warsaw. %s", f.Housing),
				AZ: fmt.Sprintf("Varşavada yaşayıram, %s", f.Housing),
				RU: fmt.Sprintf("Я живу в Варшаве. %s", f.Housing),
				TR: fmt.Sprintf("Varşova'da yaşıyorum. %s", f.Housing),
				PL: fmt.Sprintf("Mieszkam w Warszawie. %s", f.Housing),
			},
		},
		{
			Question: "Which city were you born in?",
			Answer: Localized{
				EN: fmt.Sprintf("I was born in %s.", f.BornCity),
				AZ: fmt.Sprintf("%s-da doğulmuşam.", f.BornCity),
				RU: fmt.Sprintf("Я родился в %s.", f.BornCity),
				TR: fmt.Sprintf("%s-da doğdum.", f.BornCity),
				PL: fmt.Sprintf("Urodziłem się w %s.", f.BornCity),
			},
		},
		{
			Question: "How old are you?",
			Answer: Localized{
				EN: fmt.Sprintf("I'm %s years old; my birthday is %s.", f.Age, f.Birthday),
				AZ: fmt.Sprintf("%s yaşım var, doğum tarixim %s-dir.", f.Age, f.Birthday),
				RU: fmt.Sprintf("Мне %s лет; день рождения %s.", f.Age, f.Birthday),
				TR: fmt.Sprintf("%s yaşındayım; doğum günüm %s.", f.Age, f.Birthday),
				PL: fmt.Sprintf("Mam %s lat; urodziny mam %s.", f.Age, f.Birthday),
			},
		},
		{
			Question: "Which programming languages do you use?",
			Answer: Localized{
				EN: "Mainly Python (FastAPI, Django, Flask) and MongoDB; also JavaScript, React, Electron. I've done projects with TensorFlow and OpenCV.",
				AZ: "Əsasən Python (FastAPI, Django, Flask) və MongoDB; həm də JavaScript, React, Electron. TensorFlow və OpenCV ilə layihələr etmişəm.",
				RU: "В основном Python (FastAPI, Django, Flask) и MongoDB; также JavaScript, React, Electron. Делал проекты с TensorFlow и OpenCV.",
				TR: "Ağırlıklı Python (FastAPI, Django, Flask) ve MongoDB; ayrıca JavaScript, React, Electron. TensorFlow ve OpenCV projeleri yaptım.",
				PL: "Głównie Python (FastAPI, Django, Flask) i MongoDB; także JavaScript, React, Electron. Realizowałem projekty z TensorFlow i OpenCV.",
			},
		},
		{
			Question: "Tell me about Banu.",
			Answer: Localized{
				EN: "My first deep feelings were for Banu; I respected her and wrote letters. Even if it wasn't mutual, it left a mark and made me feel more connected to life.",
				AZ: f.Love.About,
				RU: "Мои первые глубокие чувства были к Бану; относился с уважением, писал письма. Даже если это не стало взаимным, это оставило след и сильнее связало меня с жизнью.",
				TR: "İlk derin duygularım Banu'yaydı; saygıyla yaklaştım ve mektuplar yazdım. Karşılık olmasa bile bende iz bıraktı ve hayata daha bağlı hissettirdi.",
				PL: "Moje pierwsze głębokie uczucia były do Banu; traktowałem ją z szacunkiem i pisałem listy. Nawet jeśli to nie było odwzajemnione, zostawiło ślad.",
			},
		},
		{
			Question: "Who are you?",
			Answer: Localized{
				EN: "I'm Elvin — a Computer Engineering student who prefers systematic work and stable outcomes.",
				AZ: "Mən Elvinəm — Computer Engineering tələbəsiyəm; sistemli işləməyi və sabit nəticəni üstün tuturam.",
				RU: "Я Эльвин — студент Computer Engineering; предпочитаю системную работу и стабильный результат.",
				TR: "Ben Elvin'im — Computer Engineering öğrencisiyim; sistemli çalışmayı ve stabil sonucu tercih ederim.",
				PL: "Jestem Elvin — student Computer Engineering; wolę pracę systematyczną i stabilne wyniki.",
			},
		},
	}
}

// ValidateCorpus checks every entry defines all five languages.
func ValidateCorpus(entries []QAEntry) error {
	for i, e := range entries {
		if e.Question == "" {
			return fmt.Errorf("qa entry %d: empty question", i)
		}
		if err := e.Answer.Validate(); err != nil {
			return fmt.Errorf("qa entry %q: %w", e.Question, err)
		}
	}
	return nil
}
