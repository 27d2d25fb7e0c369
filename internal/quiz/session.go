package quiz

import "errors"

// ErrUnanswered : la question courante n'a pas de réponse, on ne peut pas avancer
var ErrUnanswered = errors.New("question courante sans réponse")

// Answers associe l'identifiant d'une question à ses jetons sélectionnés.
// Une question à choix unique porte un seul jeton, une question à choix
// multiples en porte un ou plusieurs.
type Answers map[string][]string

// Session est l'état explicite du quiz : soit en cours sur une question
// (Done=false, Step dans [0, len(Questions)-1]), soit sur les résultats
// (Done=true). Les transitions sont des fonctions pures : elles retournent
// une nouvelle valeur sans modifier l'originale.
type Session struct {
	Step    int     `json:"step"`
	Answers Answers `json:"answers"`
	Done    bool    `json:"done"`
}

func NewSession() Session {
	return Session{Answers: Answers{}}
}

// Current retourne la question courante. Sans objet une fois sur les résultats.
func (s Session) Current() Question {
	return Questions[s.Step]
}

// Answer enregistre la réponse d'une question (remplacement, pas ajout).
// On peut répondre à n'importe quelle question, y compris revenir modifier
// une réponse antérieure sans perdre les suivantes.
func (s Session) Answer(questionID string, values []string) Session {
	next := make(Answers, len(s.Answers)+1)
	for k, v := range s.Answers {
		next[k] = v
	}
	next[questionID] = values
	s.Answers = next
	return s
}

// Advance passe à la question suivante si la question courante a une réponse
// non vide. Sur la dernière question, bascule sur les résultats au lieu
// d'incrémenter l'index.
func (s Session) Advance() (Session, error) {
	if s.Done {
		return s, nil
	}
	if len(s.Answers[s.Current().ID]) == 0 {
		return s, ErrUnanswered
	}
	if s.Step < len(Questions)-1 {
		s.Step++
	} else {
		s.Done = true
	}
	return s, nil
}

// Previous recule d'une question. Les réponses déjà données aux questions
// suivantes sont conservées.
func (s Session) Previous() Session {
	if !s.Done && s.Step > 0 {
		s.Step--
	}
	return s
}

// Restart revient à la première question, réponses effacées.
func (s Session) Restart() Session {
	return NewSession()
}
