package usecases

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
	"github.com/elvin-babanli/personabot-go/internal/domain/persona"
)

// Intent labels. Each static label owns a canned response set covering all
// five languages; the two clock labels render at call time.
const (
	intentProgrammingLangs = "programming_langs"
	intentSpokenLangs      = "spoken_langs"
	intentWhereLiveHouse   = "where_live_house"
	intentWhereLive        = "where_live"
	intentBornWhere        = "born_where"
	intentAge              = "age"
	intentWhoAreYou        = "who_are_you"
	intentWhyHire          = "why_hire"
	intentFamily           = "family"
	intentLoveBanu         = "love_banu"
	intentProjects         = "projects"
	intentEmailContact     = "email_contact"
	intentTodayDate        = "today_date"
	intentTimeNow          = "time_now"
)

// intentRule is one (label, trigger) pair. Rules are evaluated in slice
// order and the first match wins, so more specific patterns must come
// before more general ones (where_live_house before where_live).
type intentRule struct {
	label   string
	pattern *regexp.Regexp
}

// Note on \b: Go's word boundary is ASCII-only, so the original anchors
// were kept only where the pattern edge is an ASCII letter. Alternatives
// starting or ending in ə/ı/ş and Cyrillic phrases run unanchored.
var intentRules = []intentRule{
	{intentProgrammingLangs, regexp.MustCompile(`\b(proqram(lama)?\s*dilləri|programming\s*languages|coding\s*languages|tech\s*stack|stack)\b`)},
	{intentSpokenLangs, regexp.MustCompile(`\b(dil bilikləri|hansı dill(ə|)rd[ə]\s*danışırsan|languages (you )?speak|hans(ı|i) dill(ə|)r)\b`)},
	{intentWhereLiveHouse, regexp.MustCompile(`\b(necə|nə cür)\s+bir\s+ev(d|)ə|\bev(in)? nec(ə|ədir)`)},
	{intentWhereLive, regexp.MustCompile(`\bharada\b.*\byaşay(ırsan|ıram)\b|\byaşayış yeri(n)?\b|\biqamət\b|where do you live\b|gdzie mieszkasz|nerede yaşıyorsun`)},
	{intentBornWhere, regexp.MustCompile(`\bharada\b.*\b(doğul(ub|musan|dun))\b|\bdoğum yeri\b|\bdoğulduğun (yer|şəhər)\b|born (in|where)\b`)},
	{intentAge, regexp.MustCompile(`\bneçə\s+yaş(ın|ı)?|\byaş(ın|ı)?\s*neçə|\byaş(ın|ı)?\??$|how old are you\b|\bile masz lat\b|kaç yaşındasın|сколько тебе лет`)},
	{intentWhoAreYou, regexp.MustCompile(`\bsən kimsən|özünü tanıt|who are you|introduce yourself|about you`)},
	{intentWhyHire, regexp.MustCompile(`(niyə|nəyə görə).*(işə al|hire you|təklif|qəbul)|why should (we|i) hire you`)},
	{intentFamily, regexp.MustCompile(`\bailə|\bfamily\b|\batan(ın)? adı|\banan(ın)? adı|\bqardaş|\bbacı`)},
	{intentLoveBanu, regexp.MustCompile(`\b(banu|sevg(il|)i|girlfriend|qız dost(un|)|love life)\b`)},
	{intentProjects, regexp.MustCompile(`\b(layih(ə|)lər|projects|portfolio|nələr etmisən|nə üzərində işləmisən)\b`)},
	{intentEmailContact, regexp.MustCompile(`\b(email|e-poçt|contact)\b|əlaqə`)},
	{intentTodayDate, regexp.MustCompile(`\b(bu gün ayın neçəsidir|bugün tarih|what(?:')?s the date|what day is it)\b`)},
	{intentTimeNow, regexp.MustCompile(`\b(indi saat neçədir|current time|what time is it)\b`)},
}

// IntentMatcher tests input against the ordered rule list and renders the
// matched intent's canned response for the detected language.
// It is a pure function of (text, lang) apart from the two clock intents.
type IntentMatcher struct {
	canned map[string]persona.Localized
	loc    *time.Location
	now    func() time.Time
}

// NewIntentMatcher builds the matcher from persona facts. Every static
// intent must have all five language variants; a gap is a configuration
// defect reported here, not at request time.
func NewIntentMatcher(facts *persona.Facts) (*IntentMatcher, error) {
	canned := cannedResponses(facts)
	for _, rule := range intentRules {
		if rule.label == intentTodayDate || rule.label == intentTimeNow {
			continue
		}
		set, ok := canned[rule.label]
		if !ok {
			return nil, fmt.Errorf("intent %s: no catalogued response", rule.label)
		}
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("intent %s: %w", rule.label, err)
		}
	}

	loc, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		loc = time.FixedZone("CET", 3600)
	}

	return &IntentMatcher{
		canned: canned,
		loc:    loc,
		now:    time.Now,
	}, nil
}

// Match normalizes text and tests each rule in priority order.
// The empty second return means no rule matched - a pipeline pass-through
// signal, not an error.
func (m *IntentMatcher) Match(text string, lang entities.Language) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range intentRules {
		if !rule.pattern.MatchString(t) {
			continue
		}
		switch rule.label {
		case intentTodayDate:
			return m.todayDate(lang), true
		case intentTimeNow:
			return m.timeNow(lang), true
		default:
			return m.canned[rule.label].For(lang), true
		}
	}
	return "", false
}

// todayDate renders the current date in Europe/Warsaw with per-language phrasing.
func (m *IntentMatcher) todayDate(lang entities.Language) string {
	now := m.now().In(m.loc)
	switch lang {
	case entities.LangRU:
		return now.Format("Сегодня 02 January 2006 г.")
	case entities.LangTR:
		return now.Format("Bugün 02 January 2006.")
	case entities.LangPL:
		return now.Format("Dziś jest 02 January 2006.")
	case entities.LangEN:
		return now.Format("Today is January 02, 2006.")
	default:
		return now.Format("Bu gün 02.01.2006-dir.")
	}
}

// timeNow renders the current time in Europe/Warsaw with per-language phrasing.
func (m *IntentMatcher) timeNow(lang entities.Language) string {
	now := m.now().In(m.loc)
	switch lang {
	case entities.LangRU:
		return now.Format("Текущее время: 15:04 (Европа/Варшава).")
	case entities.LangTR:
		return now.Format("Şu an saat: 15:04 (Europe/Warsaw).")
	case entities.LangPL:
		return now.Format("Aktualna godzina: 15:04 (Europe/Warsaw).")
	case entities.LangEN:
		return now.Format("Current time: 15:04 (Europe/Warsaw).")
	default:
		return now.Format("Hazırki saat: 15:04 (Europe/Warsaw).")
	}
}

// cannedResponses renders the static intent catalogue from the facts.
// Templated fields (age, birthday, contact, family names, housing) are
// interpolated once here; only the clock intents recompute per call.
func cannedResponses(f *persona.Facts) map[string]persona.Localized {
	fam := f.Family
	return map[string]persona.Localized{
		intentProgrammingLangs: {
			AZ: "Əsasən Python (FastAPI, Django, Flask) və MongoDB ilə işləyirəm; həm də JavaScript, React və Electron təcrübəm var. TensorFlow və OpenCV ilə layihələr etmişəm.",
			EN: "Mainly Python (FastAPI, Django, Flask) and MongoDB; I also work with JavaScript, React, and Electron. I've done projects with TensorFlow and OpenCV.",
			RU: "В основном работаю с Python (FastAPI, Django, Flask) и MongoDB; также использую JavaScript, React и Electron. Делал проекты с TensorFlow и OpenCV.",
			TR: "Ağırlıklı olarak Python (FastAPI, Django, Flask) ve MongoDB ile çalışıyorum; ayrıca JavaScript, React ve Electron deneyimim var. TensorFlow ve OpenCV projeleri yaptım.",
			PL: "Głównie pracuję z Pythonem (FastAPI, Django, Flask) i MongoDB; używam też JavaScriptu, Reacta i Electrona. Robiłem projekty z TensorFlow i OpenCV.",
		},
		intentSpokenLangs: {
			AZ: "Azərbaycanca və türkcə sərbəst danışıram; ingilis və rus orta səviyyədədir; bir az da polyakca bilirəm.",
			EN: "I speak Azerbaijani and Turkish fluently; English and Russian at an intermediate level; a bit of Polish.",
			RU: "Свободно говорю на азербайджанском и турецком; английский и русский — средний уровень; немного польский.",
			TR: "Azerbaycanca ve Türkçeyi akıcı konuşurum; İngilizce ve Rusçam orta seviyede; biraz da Lehçe biliyorum.",
			PL: "Biegle mówię po azersku i turecku; angielski i rosyjski mam na poziomie średnim; trochę po polsku.",
		},
		intentWhereLiveHouse: {
			AZ: "İki mərtəbəli kirayə evdə yaşayıram; mərkəzə yaxındır və rahatdır.",
			EN: "I live in a two-story rented house near the city center; it's comfortable.",
			RU: "Живу в двухэтажном арендованном доме недалеко от центра; мне удобно.",
			TR: "Merkeze yakın, iki katlı kiralık bir evde yaşıyorum; rahat.",
			PL: "Mieszkam w dwupiętrowym wynajmowanym domu blisko centrum; jest wygodnie.",
		},
		intentWhereLive: {
			AZ: fmt.Sprintf("Varşavada yaşayıram, %s", f.Housing),
			EN: fmt.Sprintf("I live in Warsaw. %s", f.Housing),
			RU: fmt.Sprintf("Я живу в Варшаве. %s", f.Housing),
			TR: fmt.Sprintf("Varşova'da yaşıyorum. %s", f.Housing),
			PL: fmt.Sprintf("Mieszkam w Warszawie. %s", f.Housing),
		},
		intentBornWhere: {
			AZ: fmt.Sprintf("%s-da doğulmuşam.", f.BornCity),
			EN: fmt.Sprintf("I was born in %s.", f.BornCity),
			RU: fmt.Sprintf("Я родился в %s.", f.BornCity),
			TR: fmt.Sprintf("%s-da doğdum.", f.BornCity),
			PL: fmt.Sprintf("Urodziłem się w %s.", f.BornCity),
		},
		intentAge: {
			AZ: fmt.Sprintf("%s yaşım var, doğum tarixim %s-dir.", f.Age, f.Birthday),
			EN: fmt.Sprintf("I'm %s years old; my birthday is %s.", f.Age, f.Birthday),
			RU: fmt.Sprintf("Мне %s лет; день рождения %s.", f.Age, f.Birthday),
			TR: fmt.Sprintf("%s yaşındayım; doğum günüm %s.", f.Age, f.Birthday),
			PL: fmt.Sprintf("Mam %s lat; urodziny mam %s.", f.Age, f.Birthday),
		},
		intentWhoAreYou: {
			AZ: "Mən Elvinəm. Computer Engineering oxuyuram və real problemləri praktik həllərə çevirirəm; sabit nəticəyə fokuslanıram.",
			EN: "I'm Elvin. I study Computer Engineering and like turning real problems into practical solutions; I stay focused on stable results.",
			RU: "Я Эльвин. Учусь на Computer Engineering и люблю превращать реальные задачи в практические решения; нацелен на стабильный результат.",
			TR: "Ben Elvin'im. Computer Engineering okuyorum; gerçek problemleri pratik çözümlere çevirmeyi seviyorum ve stabil sonuca odaklıyım.",
			PL: "Jestem Elvin. Studiuję Computer Engineering; lubię zamieniać realne problemy w praktyczne rozwiązania i skupiam się na stabilnych efektach.",
		},
		intentWhyHire: {
			AZ: "Məni işə götürsəniz, işi sistemli apararam və yarımçıq qoymaram. FastAPI/Django/Flask, REST və MongoDB ilə real təcrübəm var, komandaya tez uyğunlaşıram.",
			EN: "If you hire me, I'll work systematically and won't leave things half-done. I have real experience with FastAPI/Django/Flask, REST, and MongoDB, and I adapt quickly.",
			RU: "Если вы возьмёте меня, я буду работать системно и не оставлю задачи незаконченными. У меня реальный опыт с FastAPI/Django/Flask, REST и MongoDB; быстро адаптируюсь.",
			TR: "Beni işe alırsanız sistemli çalışırım ve işi yarım bırakmam. FastAPI/Django/Flask, REST ve MongoDB'de gerçek tecrübem var; hızlı uyum sağlarım.",
			PL: "Jeśli mnie zatrudnisz, będę pracował systematycznie i nie zostawię rzeczy niedokończonych. Mam realne doświadczenie z FastAPI/Django/Flask, REST i MongoDB; szybko się adaptuję.",
		},
		intentFamily: {
			AZ: fmt.Sprintf("Ailəm beş nəfərdir: qardaşım %s, bacım %s, anam %s və atam %s.", fam.Brother, fam.Sister, fam.Mother, fam.Father),
			EN: fmt.Sprintf("My family has five members: my brother %s, my sister %s, my mother %s, and my father %s.", fam.Brother, fam.Sister, fam.Mother, fam.Father),
			RU: fmt.Sprintf("В семье нас пятеро: брат %s, сестра %s, мама %s и папа %s.", fam.Brother, fam.Sister, fam.Mother, fam.Father),
			TR: fmt.Sprintf("Ailem beş kişidir: kardeşim %s, kız kardeşim %s, annem %s ve babam %s.", fam.Brother, fam.Sister, fam.Mother, fam.Father),
			PL: fmt.Sprintf("W rodzinie jest nas pięcioro: brat %s, siostra %s, mama %s i tata %s.", fam.Brother, fam.Sister, fam.Mother, fam.Father),
		},
		intentLoveBanu: {
			AZ: f.Love.About,
			EN: "My first deep feelings were for Banu. I truly loved her — it made me softer and stronger at the same time. " +
				"I treated her with respect and wrote letters. Even if it wasn't mutual, it left a mark and tied me to life more firmly.",
			RU: "Мои первые серьёзные чувства были к Бану. Я её действительно любил — это делало меня одновременно мягче и сильнее. " +
				"Относился с уважением, писал письма. Даже если это не стало взаимным, это оставило след и сильнее связало меня с жизнью.",
			TR: "İlk derin duygularım Banu'yaydı. Ona gerçekten saygıyla yaklaştım, mektuplar yazdım; karşılık olmasa bile bende iz bıraktı ve hayata daha sıkı bağladı.",
			PL: "Moje pierwsze głębokie uczucia były do Banu. Traktowałem ją z szacunkiem i pisałem listy; nawet jeśli nie było to odwzajemnione, zostawiło ślad i mocniej związało mnie z życiem.",
		},
		intentProjects: {
			AZ: "Əsas layihələrim: KFC backend, AI Exam Passer (ExamEyePro), Cashly (web banking), MoodSense, MirrorMe (prototip), Z13 (Zodiac) analizi.",
			EN: "My main projects: KFC backend, AI Exam Passer (ExamEyePro), Cashly (web banking), MoodSense, MirrorMe (prototype), Z13 (Zodiac) analysis.",
			RU: "Мои основные проекты: KFC backend, AI Exam Passer (ExamEyePro), Cashly (web banking), MoodSense, MirrorMe (прототип), Z13 (Zodiac) анализ.",
			TR: "Ana projelerim: KFC backend, AI Exam Passer (ExamEyePro), Cashly (web banking), MoodSense, MirrorMe (prototip), Z13 (Zodiac) analizi.",
			PL: "Moje główne projekty: KFC backend, AI Exam Passer (ExamEyePro), Cashly (web banking), MoodSense, MirrorMe (prototyp), analiza Z13 (Zodiac).",
		},
		intentEmailContact: {
			AZ: fmt.Sprintf("Əlaqə üçün: %s", f.Email),
			EN: fmt.Sprintf("You can reach me at: %s", f.Email),
			RU: fmt.Sprintf("Для связи: %s", f.Email),
			TR: fmt.Sprintf("İletişim: %s", f.Email),
			PL: fmt.Sprintf("Kontakt: %s", f.Email),
		},
	}
}
