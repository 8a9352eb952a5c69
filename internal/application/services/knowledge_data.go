package services

import "github.com/tmarienko/ai-health-assistant/internal/domain/entities"

// builtinKnowledge returns the default recommendation tables. Category
// order here is the binding matching order: headache before nausea before
// fatigue before anxiety before insomnia.
func builtinKnowledge() *knowledgeTable {
	return &knowledgeTable{
		Categories: []knowledgeRecord{
			{
				Category: "headache",
				Diet: entities.DietPlan{
					FoodsToConsume: []string{
						"Water (8-10 glasses daily)",
						"Magnesium-rich foods (almonds, spinach)",
						"Omega-3 fatty acids (salmon, walnuts)",
						"Ginger tea",
						"Peppermint tea",
						"Complex carbohydrates (quinoa, brown rice)",
						"Riboflavin foods (eggs, dairy)",
					},
					FoodsToAvoid: []string{
						"Aged cheeses",
						"Processed meats (nitrates)",
						"Alcohol",
						"Caffeine excess",
						"Artificial sweeteners (aspartame)",
						"MSG-containing foods",
						"Chocolate (if trigger)",
					},
					NutritionalFocus: []string{
						"Maintain stable blood sugar",
						"Stay hydrated",
						"Regular meal timing",
					},
					MealSuggestions: []string{
						"Breakfast: Steel-cut oats with almonds and berries",
						"Lunch: Quinoa salad with spinach and salmon",
						"Dinner: Grilled chicken with sweet potato and steamed broccoli",
					},
					Supplements: []string{
						"Magnesium glycinate 400mg daily",
						"Riboflavin (vitamin B2) 400mg daily",
						"Coenzyme Q10 100mg daily",
					},
				},
				Lifestyle: []string{
					"Apply cold or warm compress to head/neck",
					"Practice relaxation techniques",
					"Maintain consistent sleep schedule",
					"Identify and avoid known triggers",
				},
				RedFlags: []string{
					"Sudden severe headache ('worst headache of life')",
					"Headache with fever, stiff neck, or rash",
					"Headache with vision changes or confusion",
					"Headache after head injury",
					"Progressively worsening headaches",
				},
				BaseTips: []string{
					"Keep a headache diary noting triggers, timing, and relief measures",
					"Maintain consistent hydration throughout the day",
				},
			},
			{
				Category: "nausea",
				Diet: entities.DietPlan{
					FoodsToConsume: []string{
						"Ginger root tea",
						"Plain crackers",
						"Bananas",
						"Rice (white, plain)",
						"Toast (plain)",
						"Peppermint tea",
						"Electrolyte solutions",
						"Small frequent meals",
					},
					FoodsToAvoid: []string{
						"Spicy foods",
						"Greasy/fried foods",
						"Strong odors",
						"Large meals",
						"Dairy products",
						"High-fat foods",
						"Acidic foods (citrus, tomatoes)",
					},
					NutritionalFocus: []string{
						"BRAT diet initially",
						"Gradual food reintroduction",
						"Hydration maintenance",
					},
					MealSuggestions: []string{
						"Start: Ginger tea with plain crackers",
						"Progress: Plain rice with banana slices",
						"Advance: Chicken broth with toast",
					},
					Supplements: []string{
						"Ginger capsules 250mg as needed",
						"Vitamin B6 25mg up to three times daily",
					},
				},
				Lifestyle: []string{
					"Eat small, frequent meals",
					"Avoid strong odors",
					"Get fresh air when possible",
					"Try acupressure on P6 point (wrist)",
				},
				RedFlags: []string{
					"Persistent vomiting preventing fluid intake",
					"Signs of severe dehydration",
					"Severe abdominal pain",
					"Blood in vomit",
					"High fever with nausea",
				},
				BaseTips: []string{
					"Eat small amounts every 2-3 hours instead of large meals",
					"Sip fluids slowly between meals rather than with food",
				},
			},
			{
				Category: "fatigue",
				Diet: entities.DietPlan{
					FoodsToConsume: []string{
						"Iron-rich foods (lean red meat, spinach)",
						"Vitamin B12 sources (fish, eggs)",
						"Complex carbohydrates (oats, quinoa)",
						"Protein at each meal",
						"Vitamin D sources (fortified milk, salmon)",
						"Magnesium foods (nuts, seeds)",
					},
					FoodsToAvoid: []string{
						"Refined sugars",
						"Processed foods",
						"Excessive caffeine",
						"Large heavy meals",
						"Alcohol",
						"Empty calorie foods",
					},
					NutritionalFocus: []string{
						"Stable blood sugar levels",
						"Adequate protein intake",
						"Nutrient density",
					},
					MealSuggestions: []string{
						"Breakfast: Greek yogurt with berries and granola",
						"Lunch: Lentil soup with whole grain bread",
						"Dinner: Grilled salmon with quinoa and vegetables",
					},
					Supplements: []string{
						"Vitamin B12 (methylcobalamin) 1000mcg daily",
						"Vitamin D3 1000 IU daily",
						"Iron (only after a confirmed deficiency)",
					},
				},
				Lifestyle: []string{
					"Prioritize quality sleep hygiene",
					"Take short power naps (20-30 minutes)",
					"Increase natural light exposure",
					"Consider vitamin D supplementation (consult doctor)",
				},
				RedFlags: []string{
					"Sudden onset severe fatigue",
					"Fatigue with chest pain or shortness of breath",
					"Unexplained weight loss with fatigue",
					"Fatigue with persistent fever",
					"Fatigue affecting safety (driving, work)",
				},
				BaseTips: []string{
					"Keep a consistent sleep and wake schedule",
					"Balance activity with short restorative breaks",
				},
			},
			{
				Category: "anxiety",
				Diet: entities.DietPlan{
					FoodsToConsume: []string{
						"Chamomile tea",
						"Fatty fish (salmon, sardines)",
						"Fermented foods (yogurt, kimchi)",
						"Complex carbohydrates (oats, whole grains)",
						"Green tea (L-theanine)",
						"Dark leafy greens",
					},
					FoodsToAvoid: []string{
						"Caffeine",
						"Alcohol",
						"Refined sugars",
						"Energy drinks",
						"Highly processed snacks",
					},
					NutritionalFocus: []string{
						"Steady blood sugar",
						"Omega-3 intake",
						"Gut-brain axis support",
					},
					MealSuggestions: []string{
						"Breakfast: Oatmeal with walnuts and blueberries",
						"Lunch: Salmon salad with leafy greens",
						"Dinner: Turkey with brown rice and steamed vegetables",
					},
					Supplements: []string{
						"Magnesium glycinate 200-400mg daily",
						"Omega-3 fish oil 1000mg daily",
						"L-theanine 200mg as needed",
					},
				},
				Lifestyle: []string{
					"Practice slow diaphragmatic breathing",
					"Limit news and social media exposure",
					"Schedule worry time earlier in the day",
					"Try progressive muscle relaxation before bed",
				},
				RedFlags: []string{
					"Panic attacks with chest pain or palpitations",
					"Thoughts of self-harm",
					"Anxiety preventing eating or drinking",
					"Sudden severe anxiety with confusion",
					"New anxiety after starting a medication",
				},
				BaseTips: []string{
					"Practice a short daily breathing or mindfulness routine",
					"Reduce stimulant intake gradually rather than abruptly",
				},
			},
			{
				Category: "insomnia",
				Diet: entities.DietPlan{
					FoodsToConsume: []string{
						"Tart cherry juice",
						"Kiwi fruit (1-2 before bed)",
						"Almonds and walnuts",
						"Warm milk",
						"Chamomile tea",
						"Whole grains at dinner",
					},
					FoodsToAvoid: []string{
						"Caffeine after midday",
						"Alcohol near bedtime",
						"Heavy late-night meals",
						"Spicy evening foods",
						"Excess fluids before bed",
					},
					NutritionalFocus: []string{
						"Tryptophan and melatonin precursors",
						"Light dinners",
						"Consistent evening routine",
					},
					MealSuggestions: []string{
						"Dinner: Turkey with sweet potato and greens",
						"Evening snack: Banana with almond butter",
						"Bedtime: Chamomile tea with a kiwi",
					},
					Supplements: []string{
						"Melatonin 0.5-3mg 30 minutes before bed",
						"Magnesium glycinate 200mg in the evening",
						"Glycine 3g before bed",
					},
				},
				Lifestyle: []string{
					"Keep a fixed wake time, even on weekends",
					"Dim lights and avoid screens an hour before bed",
					"Keep the bedroom cool, dark, and quiet",
					"Get bright light exposure in the morning",
				},
				RedFlags: []string{
					"Falling asleep during driving or hazardous activities",
					"Loud snoring with observed pauses in breathing",
					"Insomnia lasting more than three months",
					"Hallucinations or severe daytime impairment",
					"Insomnia with chest pain or breathing difficulty",
				},
				BaseTips: []string{
					"Reserve the bed for sleep only",
					"Wind down with the same routine each night",
				},
			},
		},
		Default: knowledgeRecord{
			Category: string(entities.CategoryDefault),
			Diet: entities.DietPlan{
				FoodsToConsume: []string{
					"Anti-inflammatory foods (turmeric, berries)",
					"Plenty of water",
					"Whole grains",
					"Lean proteins",
					"Fresh fruits and vegetables",
					"Probiotic foods (yogurt, kefir)",
					"Nuts and seeds",
				},
				FoodsToAvoid: []string{
					"Processed foods",
					"Excessive sugar",
					"Trans fats",
					"Excessive alcohol",
					"Highly processed meats",
					"Artificial additives",
				},
				NutritionalFocus: []string{
					"Balanced nutrition",
					"Regular meal timing",
					"Portion control",
				},
				MealSuggestions: []string{
					"Focus on whole, unprocessed foods",
					"Include protein at each meal",
					"Eat plenty of colorful vegetables",
				},
				Supplements: []string{
					"A daily multivitamin if dietary variety is limited",
					"Vitamin D3 if sun exposure is low",
				},
			},
			RedFlags: []string{
				"Symptoms persist or worsen despite treatment",
				"Severe pain or discomfort",
				"Difficulty breathing or chest pain",
				"High fever or signs of infection",
				"Symptoms interfere with daily activities",
			},
			BaseTips: []string{
				"Track your symptoms daily to identify patterns",
				"Focus on whole foods and regular hydration",
			},
		},
		GeneralLifestyle: []string{
			"Maintain regular sleep schedule (7-9 hours nightly)",
			"Stay adequately hydrated (8-10 glasses of water daily)",
			"Practice stress management techniques (meditation, deep breathing)",
			"Engage in regular moderate exercise (30 minutes daily)",
			"Maintain consistent meal timing",
			"Limit alcohol and caffeine intake",
			"Create a symptom diary to identify triggers",
			"Consider gradual dietary changes rather than drastic modifications",
		},
	}
}
