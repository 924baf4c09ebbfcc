package memory

import (
	"time"

	"github.com/phrazzld/casefile/internal/domain"
)

// SeedCases returns the demo dataset relative to now: two published cases
// from the previous days and one unpublished draft created at now.
func SeedCases(now time.Time) []*domain.MysteryCase {
	day := 24 * time.Hour

	return []*domain.MysteryCase{
		{
			ID:    "1",
			Title: "The Case of the Missing Masterpiece",
			Description: "A famous painting has vanished from a locked room in the city museum. " +
				"Can you find the culprit?",
			Difficulty: domain.DifficultyEasy,
			AuthorID:   "author-jane-doe",
			Evidence: []domain.Evidence{
				{
					ID:          "1",
					Title:       "Security Footage (Lobby)",
					Type:        domain.EvidenceTypePicture,
					Content:     "https://picsum.photos/seed/lobby-mock/600/400",
					Description: "Shows a blurry figure near the entrance around midnight.",
					DataAIHint:  "security camera",
				},
				{
					ID:          "2",
					Title:       "Janitor's Statement",
					Type:        domain.EvidenceTypeDocument,
					Content:     "Text: 'I heard a strange noise around 1 AM from the West wing.'",
					Description: "The janitor was on duty that night.",
				},
				{
					ID:          "3",
					Title:       "Muddy Footprint",
					Type:        domain.EvidenceTypePicture,
					Content:     "https://picsum.photos/seed/footprint-mock/600/400",
					Description: "Found near the service exit. Size 10.",
					DataAIHint:  "muddy footprint",
				},
				{
					ID:          "4",
					Title:       "Anonymous Tip (Audio)",
					Type:        domain.EvidenceTypeAudio,
					Content:     "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
					Description: "A muffled voice saying 'The curator knows more than they let on.'",
					FileName:    "tip.mp3",
				},
			},
			Suspects: []string{"The disgruntled artist", "The ambitious curator", "The sneaky collector"},
			Victims:  []string{"The City Museum (theft of property)"},
			Solution: "The ambitious curator orchestrated the theft to claim insurance money " +
				"and replace it with a forgery.",
			IsPublished: true,
			CreatedAt:   now.Add(-2 * day),
		},
		{
			ID:    "2",
			Title: "The Silicon Valley Sabotage",
			Description: "A promising tech startup's revolutionary code has been wiped just days " +
				"before its launch. Industrial espionage or an inside job?",
			Difficulty: domain.DifficultyMedium,
			AuthorID:   "author-john-smith",
			Evidence: []domain.Evidence{
				{
					ID:          "5",
					Title:       "Encrypted Email Fragment",
					Type:        domain.EvidenceTypeDocument,
					Content:     "Text: 'Project X... transfer complete... payment confirmation... ghost_protocol.'",
					Description: "Intercepted from an unknown source.",
				},
				{
					ID:          "6",
					Title:       "Server Room Access Log",
					Type:        domain.EvidenceTypePicture,
					Content:     "https://picsum.photos/seed/serverlog-mock/600/400",
					Description: "Shows unusual late-night access by a lead developer.",
					DataAIHint:  "server room",
				},
				{
					ID:          "7",
					Title:       "Voicemail from Rival CEO",
					Type:        domain.EvidenceTypeAudio,
					Content:     "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3",
					Description: "A heated exchange about market competition.",
					FileName:    "rival_ceo.mp3",
				},
				{
					ID:          "8",
					Title:       "Developer's Note",
					Type:        domain.EvidenceTypeNote,
					Content:     "Scribbled note: 'Can't take this pressure. Need an out. They offered double.'",
					Description: "Found in the lead developer's trash bin.",
				},
			},
			Suspects:    []string{"Rival Company CEO", "Disgruntled Lead Developer", "Mysterious Hacker Group"},
			Victims:     []string{"TechLeap Inc. (sabotage)"},
			Solution:    "The Disgruntled Lead Developer, bribed by the Rival Company, wiped the code.",
			IsPublished: true,
			CreatedAt:   now.Add(-day),
		},
		{
			ID:    "3",
			Title: "The Unsolved Alibi",
			Description: "A wealthy businessman is found dead in his study. Everyone has an alibi, " +
				"but one of them must be lying. Who is it?",
			Difficulty: domain.DifficultyHard,
			AuthorID:   "author-jane-doe",
			Evidence: []domain.Evidence{
				{
					ID:          "9",
					Title:       "Crime Scene Photo",
					Type:        domain.EvidenceTypePicture,
					Content:     "https://picsum.photos/seed/crimephoto-mock/600/400",
					Description: "Study in disarray, victim on the floor.",
					DataAIHint:  "crime scene study",
				},
				{
					ID:          "10",
					Title:       "Butler's Testimony",
					Type:        domain.EvidenceTypeDocument,
					Content:     "Text: 'I served Mr. Blackwood his tea at 8 PM and retired. I saw nothing unusual.'",
					Description: "Claims to be in his quarters.",
				},
				{
					ID:          "11",
					Title:       "Business Partner's Alibi",
					Type:        domain.EvidenceTypeNote,
					Content:     "Claims to be at a charity gala across town. Has a photo stub as proof.",
					Description: "Partner stood to gain from a recent deal.",
				},
				{
					ID:          "12",
					Title:       "Wife's Statement",
					Type:        domain.EvidenceTypeDocument,
					Content:     "Text: 'I was reading in the conservatory all evening. I heard a thud around 9 PM.'",
					Description: "Appears distraught.",
				},
			},
			Suspects: []string{"The Loyal Butler", "The Scheming Business Partner", "The Grieving Wife"},
			Victims:  []string{"Mr. Alistair Blackwood (murder)"},
			Solution: "The Business Partner's alibi is flawed; the charity gala ended earlier than " +
				"claimed, allowing them time to commit the crime.",
			IsPublished: false,
			CreatedAt:   now,
		},
	}
}
