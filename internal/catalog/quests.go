// Package catalog holds the built-in bilingual quest content seeded into an
// empty quest store. Quest ids are fixed slugs so seeding stays idempotent.
package catalog

import "eduquest-service/internal/domain"

// Quests returns the full seed catalog: eight quests, four per subject,
// split evenly across grades 1 and 2, ordered for display.
func Quests() []domain.Quest {
	return []domain.Quest{
		{
			ID:               "quest-mango-count",
			Title:            "Help the Farmer Count Mangoes",
			TitleOdia:        "କୃଷକଙ୍କୁ ଆମ୍ବ ଗଣିବାରେ ସାହାଯ୍ୟ କରନ୍ତୁ",
			Description:      "A friendly farmer needs help counting mangoes in his orchard",
			DescriptionOdia:  "ଜଣେ ବନ୍ଧୁ କୃଷକଙ୍କୁ ତାଙ୍କର ବଗିଚାରେ ଆମ୍ବ ଗଣିବାରେ ସାହାଯ୍ୟ ଦରକାର",
			Subject:          domain.SubjectMath,
			Grade:            1,
			Difficulty:       domain.DifficultyEasy,
			XPReward:         50,
			StoryContext:     "In a beautiful village near Puri, farmer Raju has a mango orchard. Help him count the ripe mangoes so he can sell them at the market!",
			StoryContextOdia: "ପୁରୀ ନିକଟସ୍ଥ ଏକ ସୁନ୍ଦର ଗାଁରେ, କୃଷକ ରାଜୁଙ୍କର ଆମ୍ବ ବଗିଚା ଅଛି। ତାଙ୍କୁ ପାଚିଲା ଆମ୍ବ ଗଣିବାରେ ସାହାଯ୍ୟ କର ଯାହାଫଳରେ ସେ ବଜାରରେ ବିକ୍ରି କରିପାରିବ!",
			Questions: []domain.Question{
				{
					ID:            "q1",
					Question:      "How many mangoes do you see?",
					QuestionOdia:  "ତୁମେ କେତୋଟି ଆମ୍ବ ଦେଖୁଛ?",
					Type:          "counting",
					ImageURL:      "https://images.unsplash.com/photo-1502086223501-7ea6ecd79368",
					CorrectAnswer: "5",
					Options:       []string{"3", "5", "7", "9"},
				},
			},
			IsUnlocked: true,
			Order:      1,
		},
		{
			ID:               "quest-river-guardians",
			Title:            "Protect the Village - Learn About Rivers",
			TitleOdia:        "ଗାଁକୁ ରକ୍ଷା କର - ନଦୀ ବିଷୟରେ ଜାଣ",
			Description:      "Become a village protector by learning about Odisha's rivers",
			DescriptionOdia:  "ଓଡ଼ିଶାର ନଦୀ ବିଷୟରେ ଜାଣି ଗାଁର ରକ୍ଷକ ହୁଅ",
			Subject:          domain.SubjectSocialStudies,
			Grade:            1,
			Difficulty:       domain.DifficultyEasy,
			XPReward:         60,
			StoryContext:     "The wise village elder needs your help to protect the village from floods. Learn about the sacred rivers of Odisha!",
			StoryContextOdia: "ଜ୍ଞାନୀ ଗାଁର ପ୍ରାଚୀନ ବନ୍ୟାରୁ ଗାଁକୁ ରକ୍ଷା କରିବା ପାଇଁ ତୁମର ସାହାଯ୍ୟ ଦରକାର। ଓଡ଼ିଶାର ପବିତ୍ର ନଦୀଗୁଡ଼ିକ ବିଷୟରେ ଜାଣ!",
			Questions: []domain.Question{
				{
					ID:            "q1",
					Question:      "Which is the longest river in Odisha?",
					QuestionOdia:  "ଓଡ଼ିଶାର ସବୁଠାରୁ ଲମ୍ବା ନଦୀ କେଉଁଟି?",
					Type:          "multiple_choice",
					CorrectAnswer: "Mahanadi",
					Options:       []string{"Brahmani", "Mahanadi", "Baitarani", "Subarnarekha"},
				},
			},
			IsUnlocked: true,
			Order:      2,
		},
		{
			ID:               "quest-chilika-boats",
			Title:            "Count the Boats on Chilika Lake",
			TitleOdia:        "ଚିଲିକା ହ୍ରଦରେ ଡଙ୍ଗା ଗଣ",
			Description:      "Help the fisherman count boats on the great Chilika lake",
			DescriptionOdia:  "ବିଶାଳ ଚିଲିକା ହ୍ରଦରେ ଡଙ୍ଗା ଗଣିବାରେ ମାଛୁଆଙ୍କୁ ସାହାଯ୍ୟ କର",
			Subject:          domain.SubjectMath,
			Grade:            1,
			Difficulty:       domain.DifficultyEasy,
			XPReward:         50,
			StoryContext:     "Fisherman Hari sails on Chilika lake every morning. Count the boats so everyone comes home safely before sunset!",
			StoryContextOdia: "ମାଛୁଆ ହରି ପ୍ରତିଦିନ ସକାଳେ ଚିଲିକା ହ୍ରଦରେ ଡଙ୍ଗା ଚଳାନ୍ତି। ଡଙ୍ଗାଗୁଡ଼ିକୁ ଗଣ ଯାହାଫଳରେ ସମସ୍ତେ ସୂର୍ଯ୍ୟାସ୍ତ ପୂର୍ବରୁ ନିରାପଦରେ ଘରକୁ ଫେରିବେ!",
			Questions: []domain.Question{
				{
					ID:            "q1",
					Question:      "If 3 boats go out and 4 more join them, how many boats are on the lake?",
					QuestionOdia:  "ଯଦି ୩ଟି ଡଙ୍ଗା ବାହାରନ୍ତି ଏବଂ ଆଉ ୪ଟି ଯୋଗ ଦିଅନ୍ତି, ହ୍ରଦରେ କେତୋଟି ଡଙ୍ଗା ଅଛି?",
					Type:          "counting",
					CorrectAnswer: "7",
					Options:       []string{"5", "6", "7", "8"},
				},
			},
			IsUnlocked: true,
			Order:      3,
		},
		{
			ID:               "quest-rath-yatra",
			Title:            "The Chariot Festival of Puri",
			TitleOdia:        "ପୁରୀର ରଥଯାତ୍ରା",
			Description:      "Discover the famous chariot festival celebrated in Puri",
			DescriptionOdia:  "ପୁରୀରେ ପାଳିତ ପ୍ରସିଦ୍ଧ ରଥ ପର୍ବ ବିଷୟରେ ଜାଣ",
			Subject:          domain.SubjectSocialStudies,
			Grade:            1,
			Difficulty:       domain.DifficultyEasy,
			XPReward:         60,
			StoryContext:     "Every year the streets of Puri fill with music and color. Three giant chariots roll toward the sea. Find out what this great festival is called!",
			StoryContextOdia: "ପ୍ରତିବର୍ଷ ପୁରୀର ରାସ୍ତା ସଙ୍ଗୀତ ଓ ରଙ୍ଗରେ ଭରିଯାଏ। ତିନୋଟି ବିଶାଳ ରଥ ସମୁଦ୍ର ଆଡ଼କୁ ଗଡ଼ନ୍ତି। ଏହି ମହାନ ପର୍ବର ନାମ କଣ ଜାଣ!",
			Questions: []domain.Question{
				{
					ID:            "q1",
					Question:      "Which festival has giant chariots pulled through the streets of Puri?",
					QuestionOdia:  "କେଉଁ ପର୍ବରେ ପୁରୀ ରାସ୍ତାରେ ବଡ଼ ରଥ ଟଣାଯାଏ?",
					Type:          "multiple_choice",
					CorrectAnswer: "Rath Yatra",
					Options:       []string{"Diwali", "Rath Yatra", "Holi", "Raja"},
				},
			},
			IsUnlocked: true,
			Order:      4,
		},
		{
			ID:               "quest-rasagola-share",
			Title:            "Share the Rasagolas",
			TitleOdia:        "ରସଗୋଲା ବାଣ୍ଟ",
			Description:      "Help grandmother share sweets fairly among the children",
			DescriptionOdia:  "ପିଲାମାନଙ୍କ ମଧ୍ୟରେ ମିଠା ସମାନ ଭାବରେ ବାଣ୍ଟିବାରେ ଜେଜେମାଙ୍କୁ ସାହାଯ୍ୟ କର",
			Subject:          domain.SubjectMath,
			Grade:            2,
			Difficulty:       domain.DifficultyMedium,
			XPReward:         70,
			StoryContext:     "Grandmother Kuni has made soft, sweet rasagolas for the whole family. Help her share them so every child gets the same number!",
			StoryContextOdia: "ଜେଜେମା କୁନି ସାରା ପରିବାର ପାଇଁ ନରମ ମିଠା ରସଗୋଲା ତିଆରି କରିଛନ୍ତି। ସବୁ ପିଲାଙ୍କୁ ସମାନ ସଂଖ୍ୟା ମିଳିବା ପାଇଁ ବାଣ୍ଟିବାରେ ତାଙ୍କୁ ସାହାଯ୍ୟ କର!",
			Questions: []domain.Question{
				{
					ID:            "q1",
					Question:      "Grandma made 12 rasagolas for 4 children. How many does each child get?",
					QuestionOdia:  "ଜେଜେମା ୪ ଜଣ ପିଲାଙ୍କ ପାଇଁ ୧୨ଟି ରସଗୋଲା ତିଆରି କଲେ। ପ୍ରତ୍ୟେକ ପିଲାକୁ କେତୋଟି ମିଳିବ?",
					Type:          "word_problem",
					CorrectAnswer: "3",
					Options:       []string{"2", "3", "4", "6"},
				},
				{
					ID:            "q2",
					Question:      "If grandma makes 6 more rasagolas, how many rasagolas are there in total?",
					QuestionOdia:  "ଯଦି ଜେଜେମା ଆଉ ୬ଟି ରସଗୋଲା ତିଆରି କରନ୍ତି, ମୋଟ କେତୋଟି ରସଗୋଲା ହେବ?",
					Type:          "word_problem",
					CorrectAnswer: "18",
					Options:       []string{"16", "17", "18", "20"},
				},
			},
			IsUnlocked: true,
			Order:      5,
		},
		{
			ID:               "quest-market-money",
			Title:            "Market Day Money Math",
			TitleOdia:        "ହାଟ ଦିନର ପଇସା ହିସାବ",
			Description:      "Add up prices at the weekly village market",
			DescriptionOdia:  "ସାପ୍ତାହିକ ଗାଁ ହାଟରେ ଦାମ ଯୋଗ କର",
			Subject:          domain.SubjectMath,
			Grade:            2,
			Difficulty:       domain.DifficultyMedium,
			XPReward:         70,
			StoryContext:     "It is market day! Mother has sent you to the village haat with a small purse. Add the prices carefully so you bring home the right change.",
			StoryContextOdia: "ଆଜି ହାଟ ଦିନ! ମା ତୁମକୁ ଛୋଟ ପଇସା ମୁଣି ସହିତ ଗାଁ ହାଟକୁ ପଠାଇଛନ୍ତି। ଦାମଗୁଡ଼ିକୁ ଯତ୍ନରେ ଯୋଗ କର ଯାହାଫଳରେ ତୁମେ ଠିକ ଭଙ୍ଗା ପଇସା ଘରକୁ ଆଣିବ।",
			Questions: []domain.Question{
				{
					ID:            "q1",
					Question:      "A coconut costs 20 rupees and bananas cost 15 rupees. How many rupees do you need for both?",
					QuestionOdia:  "ଗୋଟିଏ ନଡ଼ିଆର ଦାମ ୨୦ ଟଙ୍କା ଏବଂ କଦଳୀର ଦାମ ୧୫ ଟଙ୍କା। ଦୁଇଟି ପାଇଁ କେତେ ଟଙ୍କା ଦରକାର?",
					Type:          "word_problem",
					CorrectAnswer: "35",
					Options:       []string{"25", "30", "35", "40"},
				},
			},
			IsUnlocked: true,
			Order:      6,
		},
		{
			ID:               "quest-sun-temple",
			Title:            "Secrets of the Sun Temple",
			TitleOdia:        "ସୂର୍ଯ୍ୟ ମନ୍ଦିରର ରହସ୍ୟ",
			Description:      "Explore the great stone chariot of the Sun God",
			DescriptionOdia:  "ସୂର୍ଯ୍ୟ ଦେବତାଙ୍କ ବିଶାଳ ପଥର ରଥ ବିଷୟରେ ଜାଣ",
			Subject:          domain.SubjectSocialStudies,
			Grade:            2,
			Difficulty:       domain.DifficultyMedium,
			XPReward:         80,
			StoryContext:     "Long ago, builders carved a giant chariot out of stone for the Sun God, with wheels that tell the time. Travel there and uncover its secrets!",
			StoryContextOdia: "ବହୁ ଦିନ ପୂର୍ବେ, କାରିଗରମାନେ ସୂର୍ଯ୍ୟ ଦେବତାଙ୍କ ପାଇଁ ପଥରରେ ଏକ ବିଶାଳ ରଥ ଖୋଦେଇ କରିଥିଲେ, ଯାହାର ଚକ ସମୟ ଜଣାଏ। ସେଠାକୁ ଯାଇ ତାର ରହସ୍ୟ ଖୋଜ!",
			Questions: []domain.Question{
				{
					ID:            "q1",
					Question:      "In which place is the famous Sun Temple of Odisha?",
					QuestionOdia:  "ଓଡ଼ିଶାର ପ୍ରସିଦ୍ଧ ସୂର୍ଯ୍ୟ ମନ୍ଦିର କେଉଁଠାରେ ଅଛି?",
					Type:          "multiple_choice",
					CorrectAnswer: "Konark",
					Options:       []string{"Puri", "Konark", "Cuttack", "Sambalpur"},
				},
			},
			IsUnlocked: true,
			Order:      7,
		},
		{
			ID:               "quest-field-crops",
			Title:            "What Grows in Our Fields",
			TitleOdia:        "ଆମ ବିଲରେ କଣ ଫଳେ",
			Description:      "Learn about the crops that feed the villages of Odisha",
			DescriptionOdia:  "ଓଡ଼ିଶାର ଗାଁଗୁଡ଼ିକୁ ଖାଦ୍ୟ ଦେଉଥିବା ଫସଲ ବିଷୟରେ ଜାଣ",
			Subject:          domain.SubjectSocialStudies,
			Grade:            2,
			Difficulty:       domain.DifficultyMedium,
			XPReward:         80,
			StoryContext:     "Walk through the green fields with farmer Mina after the rains. She will show you which crop fills almost every field in Odisha.",
			StoryContextOdia: "ବର୍ଷା ପରେ କୃଷକ ମିନାଙ୍କ ସହିତ ସବୁଜ ବିଲ ଦେଇ ଚାଲ। ଓଡ଼ିଶାର ପ୍ରାୟ ସବୁ ବିଲରେ କେଉଁ ଫସଲ ଭରିଥାଏ ସେ ତୁମକୁ ଦେଖାଇବେ।",
			Questions: []domain.Question{
				{
					ID:            "q1",
					Question:      "Which crop do farmers in Odisha grow the most?",
					QuestionOdia:  "ଓଡ଼ିଶାର କୃଷକମାନେ କେଉଁ ଫସଲ ସବୁଠାରୁ ଅଧିକ ଚାଷ କରନ୍ତି?",
					Type:          "multiple_choice",
					CorrectAnswer: "Rice",
					Options:       []string{"Rice", "Wheat", "Tea", "Cotton"},
				},
			},
			IsUnlocked: true,
			Order:      8,
		},
	}
}
