package seed

import "github.com/foodieapp/backend/internal/model"

// SampleRecipes returns the canonical sample dataset. Ids and creation
// timestamps are assigned at write time by Refresh; here they are left
// zero so the fixture itself stays stable.
func SampleRecipes() []model.Recipe {
	return []model.Recipe{
		{
			Name:        "Classic Margherita Pizza",
			Description: "A traditional Italian pizza with fresh mozzarella, tomatoes, and basil.",
			Image:       model.AssetImage("240_F_232418936.jpg"),
			CategoryID:  "3", // Main Dishes
			PrepTime:    30,
			CookTime:    15,
			Servings:    4,
			Difficulty:  model.DifficultyMedium,
			Ingredients: []model.Ingredient{
				{Name: "Pizza dough", Quantity: 1, Unit: "lb"},
				{Name: "Tomato sauce", Quantity: 1, Unit: "cup"},
				{Name: "Fresh mozzarella", Quantity: 8, Unit: "oz"},
				{Name: "Fresh basil", Quantity: 1, Unit: "handful"},
				{Name: "Olive oil", Quantity: 2, Unit: "tbsp"},
				{Name: "Salt", Quantity: 1, Unit: "tsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Preheat your oven to 475°F (245°C)."},
				{Text: "Roll out the pizza dough on a floured surface to your desired thickness."},
				{Text: "Spread tomato sauce evenly over the dough, leaving a small border for the crust."},
				{Text: "Tear the mozzarella into pieces and distribute over the sauce."},
				{Text: "Drizzle with olive oil and sprinkle with salt."},
				{Text: "Bake for 12-15 minutes until the crust is golden and the cheese is bubbly."},
				{Text: "Garnish with fresh basil leaves before serving."},
			},
			Nutrition: model.Nutrition{Calories: 250, Protein: 12, Carbs: 30, Fat: 10},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{"Vegetarian"},
			Likes:     42,
		},
		{
			Name:        "Greek Salad",
			Description: "A refreshing Mediterranean salad with feta cheese, olives, and a tangy dressing.",
			Image:       model.AssetImage("240_F_551829600.jpg"),
			CategoryID:  "2", // Salads
			PrepTime:    15,
			CookTime:    0,
			Servings:    4,
			Difficulty:  model.DifficultyEasy,
			Ingredients: []model.Ingredient{
				{Name: "Cucumber", Quantity: 2, Unit: "medium"},
				{Name: "Tomatoes", Quantity: 2, Unit: "large"},
				{Name: "Red onion", Quantity: 1, Unit: "small"},
				{Name: "Feta cheese", Quantity: 200, Unit: "g"},
				{Name: "Kalamata olives", Quantity: 1, Unit: "cup"},
				{Name: "Olive oil", Quantity: 3, Unit: "tbsp"},
				{Name: "Lemon juice", Quantity: 2, Unit: "tbsp"},
				{Name: "Oregano", Quantity: 1, Unit: "tsp"},
				{Name: "Salt", Quantity: 0.5, Unit: "tsp"},
				{Name: "Black pepper", Quantity: 0.25, Unit: "tsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Cut the cucumber into thick slices and halve the tomatoes."},
				{Text: "Thinly slice the red onion."},
				{Text: "Combine cucumber, tomatoes, and onion in a large bowl."},
				{Text: "Add crumbled feta cheese and olives."},
				{Text: "In a small bowl, whisk together olive oil, lemon juice, oregano, salt, and pepper."},
				{Text: "Pour the dressing over the salad and toss gently to combine."},
				{Text: "Let the salad sit for 10 minutes before serving to allow flavors to meld."},
			},
			Nutrition: model.Nutrition{Calories: 180, Protein: 8, Carbs: 8, Fat: 14},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{"Gluten-Free", "Vegetarian"},
			Likes:     28,
		},
		{
			Name:        "Chocolate Chip Cookies",
			Description: "Classic homemade chocolate chip cookies that are crispy on the edges and chewy in the center.",
			Image:       model.AssetImage("cake.jpg"),
			CategoryID:  "4", // Desserts
			PrepTime:    15,
			CookTime:    12,
			Servings:    24,
			Difficulty:  model.DifficultyEasy,
			Ingredients: []model.Ingredient{
				{Name: "All-purpose flour", Quantity: 2.25, Unit: "cups"},
				{Name: "Baking soda", Quantity: 1, Unit: "tsp"},
				{Name: "Salt", Quantity: 1, Unit: "tsp"},
				{Name: "Butter", Quantity: 1, Unit: "cup"},
				{Name: "Granulated sugar", Quantity: 0.75, Unit: "cup"},
				{Name: "Brown sugar", Quantity: 0.75, Unit: "cup"},
				{Name: "Eggs", Quantity: 2, Unit: "large"},
				{Name: "Vanilla extract", Quantity: 2, Unit: "tsp"},
				{Name: "Chocolate chips", Quantity: 2, Unit: "cups"},
			},
			Instructions: []model.Instruction{
				{Text: "Preheat oven to 375°F (190°C)."},
				{Text: "In a bowl, whisk together flour, baking soda, and salt."},
				{Text: "In a large bowl, cream together butter and both sugars until fluffy."},
				{Text: "Beat in eggs one at a time, then stir in vanilla."},
				{Text: "Gradually blend in the flour mixture."},
				{Text: "Fold in chocolate chips."},
				{Text: "Drop rounded tablespoons of dough onto ungreased cookie sheets."},
				{Text: "Bake for 9 to 11 minutes or until golden brown."},
				{Text: "Cool on baking sheet for 2 minutes; remove to a wire rack."},
			},
			Nutrition: model.Nutrition{Calories: 150, Protein: 2, Carbs: 20, Fat: 8},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{"Vegetarian"},
			Likes:     56,
		},
		{
			Name:        "Green Smoothie",
			Description: "A healthy and refreshing smoothie packed with nutrients from spinach, banana, and mango.",
			Image:       model.AssetImage("240_F_858548495.jpg"),
			CategoryID:  "5", // Drinks
			PrepTime:    5,
			CookTime:    0,
			Servings:    2,
			Difficulty:  model.DifficultyEasy,
			Ingredients: []model.Ingredient{
				{Name: "Fresh spinach", Quantity: 2, Unit: "cups"},
				{Name: "Banana", Quantity: 1, Unit: "large"},
				{Name: "Mango", Quantity: 1, Unit: "cup"},
				{Name: "Greek yogurt", Quantity: 0.5, Unit: "cup"},
				{Name: "Almond milk", Quantity: 1, Unit: "cup"},
				{Name: "Honey", Quantity: 1, Unit: "tbsp"},
				{Name: "Chia seeds", Quantity: 1, Unit: "tbsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Place all ingredients in a blender."},
				{Text: "Blend on high speed until smooth and creamy."},
				{Text: "If the smoothie is too thick, add more almond milk."},
				{Text: "Pour into glasses and serve immediately."},
			},
			Nutrition: model.Nutrition{Calories: 180, Protein: 8, Carbs: 30, Fat: 4},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{"Vegan", "Gluten-Free"},
			Likes:     33,
		},
		{
			Name:        "Quinoa Buddha Bowl",
			Description: "A nutritious and colorful bowl with quinoa, roasted vegetables, and tahini dressing.",
			Image:       model.AssetImage("pasta.jpg"),
			CategoryID:  "6", // Vegan
			PrepTime:    20,
			CookTime:    30,
			Servings:    4,
			Difficulty:  model.DifficultyMedium,
			Ingredients: []model.Ingredient{
				{Name: "Quinoa", Quantity: 1, Unit: "cup"},
				{Name: "Sweet potato", Quantity: 1, Unit: "large"},
				{Name: "Chickpeas", Quantity: 1, Unit: "can"},
				{Name: "Broccoli", Quantity: 1, Unit: "head"},
				{Name: "Red bell pepper", Quantity: 1, Unit: "large"},
				{Name: "Avocado", Quantity: 1, Unit: "large"},
				{Name: "Tahini", Quantity: 0.25, Unit: "cup"},
				{Name: "Lemon juice", Quantity: 2, Unit: "tbsp"},
				{Name: "Garlic", Quantity: 1, Unit: "clove"},
				{Name: "Olive oil", Quantity: 2, Unit: "tbsp"},
				{Name: "Salt", Quantity: 1, Unit: "tsp"},
				{Name: "Black pepper", Quantity: 0.5, Unit: "tsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Preheat oven to 400°F (200°C)."},
				{Text: "Cook quinoa according to package instructions and set aside."},
				{Text: "Peel and dice the sweet potato. Toss with olive oil, salt, and pepper."},
				{Text: "Spread sweet potato on a baking sheet and roast for 20-25 minutes."},
				{Text: "Add broccoli and bell pepper to the baking sheet for the last 10 minutes."},
				{Text: "Rinse and drain chickpeas."},
				{Text: "In a small bowl, whisk together tahini, lemon juice, minced garlic, and water to make dressing."},
				{Text: "Assemble bowls with quinoa, roasted vegetables, chickpeas, and sliced avocado."},
				{Text: "Drizzle with tahini dressing before serving."},
			},
			Nutrition: model.Nutrition{Calories: 380, Protein: 12, Carbs: 50, Fat: 16},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{"Vegan", "Gluten-Free"},
			Likes:     47,
		},
		{
			Name:        "Beef Tacos",
			Description: "Flavorful ground beef tacos topped with fresh lettuce, tomatoes, and cheese.",
			Image:       model.AssetImage("240_F_1422327525.jpg"),
			CategoryID:  "3", // Main Dishes
			PrepTime:    15,
			CookTime:    20,
			Servings:    6,
			Difficulty:  model.DifficultyEasy,
			Ingredients: []model.Ingredient{
				{Name: "Ground beef", Quantity: 1, Unit: "lb"},
				{Name: "Taco seasoning", Quantity: 1, Unit: "packet"},
				{Name: "Taco shells", Quantity: 12, Unit: "count"},
				{Name: "Lettuce", Quantity: 1, Unit: "head"},
				{Name: "Tomatoes", Quantity: 2, Unit: "medium"},
				{Name: "Cheddar cheese", Quantity: 1, Unit: "cup"},
				{Name: "Sour cream", Quantity: 0.5, Unit: "cup"},
				{Name: "Avocado", Quantity: 1, Unit: "medium"},
			},
			Instructions: []model.Instruction{
				{Text: "Brown ground beef in a skillet over medium heat."},
				{Text: "Drain excess fat and add taco seasoning with water according to package directions."},
				{Text: "Simmer for 5 minutes until thickened."},
				{Text: "Warm taco shells according to package directions."},
				{Text: "Fill shells with beef mixture."},
				{Text: "Top with shredded lettuce, diced tomatoes, cheese, sour cream, and avocado."},
			},
			Nutrition: model.Nutrition{Calories: 320, Protein: 18, Carbs: 25, Fat: 16},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{},
			Likes:     35,
		},
		{
			Name:        "Vegetable Stir Fry",
			Description: "A quick and healthy vegetable stir fry with a savory sauce.",
			Image:       model.AssetImage("240_F_1427815839.jpg"),
			CategoryID:  "3", // Main Dishes
			PrepTime:    15,
			CookTime:    15,
			Servings:    4,
			Difficulty:  model.DifficultyEasy,
			Ingredients: []model.Ingredient{
				{Name: "Broccoli", Quantity: 1, Unit: "head"},
				{Name: "Bell peppers", Quantity: 2, Unit: "large"},
				{Name: "Carrots", Quantity: 2, Unit: "medium"},
				{Name: "Snow peas", Quantity: 1, Unit: "cup"},
				{Name: "Soy sauce", Quantity: 3, Unit: "tbsp"},
				{Name: "Sesame oil", Quantity: 1, Unit: "tbsp"},
				{Name: "Garlic", Quantity: 2, Unit: "cloves"},
				{Name: "Ginger", Quantity: 1, Unit: "tsp"},
				{Name: "Vegetable oil", Quantity: 2, Unit: "tbsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Cut vegetables into bite-sized pieces."},
				{Text: "Heat vegetable oil in a wok or large skillet over high heat."},
				{Text: "Add garlic and ginger, stir for 30 seconds."},
				{Text: "Add carrots and broccoli, stir fry for 3 minutes."},
				{Text: "Add bell peppers and snow peas, stir fry for 2-3 minutes until crisp-tender."},
				{Text: "Add soy sauce and sesame oil, toss to coat."},
				{Text: "Serve hot over rice or noodles."},
			},
			Nutrition: model.Nutrition{Calories: 150, Protein: 6, Carbs: 20, Fat: 5},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{"Vegan", "Gluten-Free"},
			Likes:     42,
		},
		{
			Name:        "Berry Smoothie Bowl",
			Description: "A thick and creamy smoothie bowl topped with fresh fruits and granola.",
			Image:       model.AssetImage("240_F_1554865015.jpg"),
			CategoryID:  "5", // Drinks
			PrepTime:    10,
			CookTime:    0,
			Servings:    2,
			Difficulty:  model.DifficultyEasy,
			Ingredients: []model.Ingredient{
				{Name: "Mixed frozen berries", Quantity: 1, Unit: "cup"},
				{Name: "Banana", Quantity: 1, Unit: "large"},
				{Name: "Greek yogurt", Quantity: 0.5, Unit: "cup"},
				{Name: "Almond milk", Quantity: 0.25, Unit: "cup"},
				{Name: "Honey", Quantity: 1, Unit: "tbsp"},
				{Name: "Granola", Quantity: 0.25, Unit: "cup"},
				{Name: "Fresh berries", Quantity: 0.5, Unit: "cup"},
				{Name: "Coconut flakes", Quantity: 1, Unit: "tbsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Place frozen berries, banana, Greek yogurt, almond milk, and honey in a blender."},
				{Text: "Blend until thick and creamy."},
				{Text: "Pour into bowls."},
				{Text: "Top with fresh berries, granola, and coconut flakes."},
				{Text: "Serve immediately."},
			},
			Nutrition: model.Nutrition{Calories: 280, Protein: 12, Carbs: 45, Fat: 8},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{"Vegetarian", "Gluten-Free"},
			Likes:     58,
		},
		{
			Name:        "Chicken Caesar Salad",
			Description: "A classic Caesar salad with grilled chicken and homemade dressing.",
			Image:       model.AssetImage("240_F_1579409250.jpg"),
			CategoryID:  "2", // Salads
			PrepTime:    20,
			CookTime:    15,
			Servings:    4,
			Difficulty:  model.DifficultyMedium,
			Ingredients: []model.Ingredient{
				{Name: "Chicken breast", Quantity: 2, Unit: "large"},
				{Name: "Romaine lettuce", Quantity: 2, Unit: "heads"},
				{Name: "Caesar dressing", Quantity: 0.5, Unit: "cup"},
				{Name: "Parmesan cheese", Quantity: 0.5, Unit: "cup"},
				{Name: "Croutons", Quantity: 1, Unit: "cup"},
				{Name: "Lemon", Quantity: 1, Unit: "whole"},
				{Name: "Olive oil", Quantity: 2, Unit: "tbsp"},
				{Name: "Salt", Quantity: 0.5, Unit: "tsp"},
				{Name: "Black pepper", Quantity: 0.25, Unit: "tsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Preheat grill to medium-high heat."},
				{Text: "Season chicken with salt and pepper."},
				{Text: "Grill chicken for 6-7 minutes per side until cooked through."},
				{Text: "Let chicken rest for 5 minutes, then slice."},
				{Text: "Wash and chop romaine lettuce."},
				{Text: "In a large bowl, toss lettuce with Caesar dressing."},
				{Text: "Top with sliced chicken, Parmesan cheese, and croutons."},
				{Text: "Serve with lemon wedges."},
			},
			Nutrition: model.Nutrition{Calories: 380, Protein: 35, Carbs: 12, Fat: 22},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{},
			Likes:     51,
		},
		{
			Name:        "Chocolate Lava Cake",
			Description: "Decadent individual chocolate cakes with a molten center.",
			Image:       model.AssetImage("240_F_1580489729.jpg"),
			CategoryID:  "4", // Desserts
			PrepTime:    20,
			CookTime:    12,
			Servings:    4,
			Difficulty:  model.DifficultyMedium,
			Ingredients: []model.Ingredient{
				{Name: "Dark chocolate", Quantity: 6, Unit: "oz"},
				{Name: "Butter", Quantity: 4, Unit: "tbsp"},
				{Name: "Eggs", Quantity: 2, Unit: "large"},
				{Name: "Sugar", Quantity: 2, Unit: "tbsp"},
				{Name: "All-purpose flour", Quantity: 2, Unit: "tbsp"},
				{Name: "Vanilla extract", Quantity: 0.5, Unit: "tsp"},
				{Name: "Powdered sugar", Quantity: 1, Unit: "tbsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Preheat oven to 425°F (220°C). Butter and flour four 6-ounce ramekins."},
				{Text: "Melt chocolate and butter in a double boiler until smooth."},
				{Text: "In a bowl, whisk eggs and sugar until thick and pale."},
				{Text: "Fold chocolate mixture into egg mixture."},
				{Text: "Add flour and vanilla extract, fold until just combined."},
				{Text: "Divide batter among ramekins."},
				{Text: "Bake for 12-14 minutes until edges are firm but centers jiggle."},
				{Text: "Let cool for 1 minute, then invert onto plates."},
				{Text: "Dust with powdered sugar and serve immediately."},
			},
			Nutrition: model.Nutrition{Calories: 320, Protein: 5, Carbs: 28, Fat: 22},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{},
			Likes:     67,
		},
		{
			Name:        "Avocado Toast",
			Description: "Creamy avocado on toasted bread with a sprinkle of seasonings.",
			Image:       model.AssetImage("240_F_1601653505.jpg"),
			CategoryID:  "1", // Breakfast
			PrepTime:    10,
			CookTime:    5,
			Servings:    2,
			Difficulty:  model.DifficultyEasy,
			Ingredients: []model.Ingredient{
				{Name: "Bread", Quantity: 2, Unit: "slices"},
				{Name: "Avocado", Quantity: 1, Unit: "large"},
				{Name: "Lemon juice", Quantity: 1, Unit: "tsp"},
				{Name: "Salt", Quantity: 0.25, Unit: "tsp"},
				{Name: "Black pepper", Quantity: 0.25, Unit: "tsp"},
				{Name: "Red pepper flakes", Quantity: 0.25, Unit: "tsp"},
				{Name: "Olive oil", Quantity: 1, Unit: "tsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Toast bread until golden brown."},
				{Text: "Cut avocado in half, remove pit, and scoop flesh into a bowl."},
				{Text: "Mash avocado with lemon juice, salt, and pepper."},
				{Text: "Spread avocado mixture evenly on toast."},
				{Text: "Drizzle with olive oil and sprinkle with red pepper flakes."},
				{Text: "Serve immediately."},
			},
			Nutrition: model.Nutrition{Calories: 240, Protein: 4, Carbs: 20, Fat: 18},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{"Vegetarian", "Vegan"},
			Likes:     39,
		},
		{
			Name:        "Pancakes",
			Description: "Fluffy pancakes perfect for a weekend breakfast.",
			Image:       model.AssetImage("cake.jpg"),
			CategoryID:  "1", // Breakfast
			PrepTime:    10,
			CookTime:    15,
			Servings:    4,
			Difficulty:  model.DifficultyEasy,
			Ingredients: []model.Ingredient{
				{Name: "All-purpose flour", Quantity: 1.5, Unit: "cups"},
				{Name: "Baking powder", Quantity: 2, Unit: "tsp"},
				{Name: "Salt", Quantity: 0.5, Unit: "tsp"},
				{Name: "Sugar", Quantity: 1, Unit: "tbsp"},
				{Name: "Milk", Quantity: 1.25, Unit: "cups"},
				{Name: "Egg", Quantity: 1, Unit: "large"},
				{Name: "Butter", Quantity: 2, Unit: "tbsp"},
				{Name: "Vanilla extract", Quantity: 1, Unit: "tsp"},
			},
			Instructions: []model.Instruction{
				{Text: "In a bowl, whisk together flour, baking powder, salt, and sugar."},
				{Text: "In another bowl, whisk together milk, egg, melted butter, and vanilla."},
				{Text: "Pour wet ingredients into dry ingredients and stir until just combined."},
				{Text: "Heat a griddle or large skillet over medium heat and lightly grease."},
				{Text: "Pour 1/4 cup batter for each pancake onto griddle."},
				{Text: "Cook until bubbles form on surface and edges look dry, about 2-3 minutes."},
				{Text: "Flip and cook until golden brown on the other side, 1-2 minutes more."},
				{Text: "Serve hot with maple syrup and butter."},
			},
			Nutrition: model.Nutrition{Calories: 220, Protein: 6, Carbs: 30, Fat: 7},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{},
			Likes:     45,
		},
		{
			Name:        "Vegetable Curry",
			Description: "Aromatic and flavorful vegetable curry with coconut milk.",
			Image:       model.AssetImage("pasta.jpg"),
			CategoryID:  "6", // Vegan
			PrepTime:    20,
			CookTime:    30,
			Servings:    6,
			Difficulty:  model.DifficultyMedium,
			Ingredients: []model.Ingredient{
				{Name: "Coconut oil", Quantity: 2, Unit: "tbsp"},
				{Name: "Onion", Quantity: 1, Unit: "large"},
				{Name: "Garlic", Quantity: 3, Unit: "cloves"},
				{Name: "Ginger", Quantity: 1, Unit: "tbsp"},
				{Name: "Curry powder", Quantity: 2, Unit: "tbsp"},
				{Name: "Coconut milk", Quantity: 1, Unit: "can"},
				{Name: "Vegetable broth", Quantity: 1, Unit: "cup"},
				{Name: "Potatoes", Quantity: 2, Unit: "large"},
				{Name: "Carrots", Quantity: 3, Unit: "medium"},
				{Name: "Bell peppers", Quantity: 2, Unit: "large"},
				{Name: "Green beans", Quantity: 1, Unit: "cup"},
				{Name: "Salt", Quantity: 1, Unit: "tsp"},
				{Name: "Black pepper", Quantity: 0.5, Unit: "tsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Heat coconut oil in a large pot over medium heat."},
				{Text: "Add onion, garlic, and ginger, sauté until fragrant."},
				{Text: "Add curry powder and cook for 1 minute."},
				{Text: "Add coconut milk and vegetable broth, stir to combine."},
				{Text: "Add potatoes and carrots, bring to a simmer."},
				{Text: "Cover and cook for 15 minutes."},
				{Text: "Add bell peppers and green beans, cook for 10 more minutes."},
				{Text: "Season with salt and pepper."},
				{Text: "Serve hot over rice."},
			},
			Nutrition: model.Nutrition{Calories: 280, Protein: 6, Carbs: 35, Fat: 14},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{"Vegan", "Gluten-Free"},
			Likes:     53,
		},
		{
			Name:        "Fish Tacos",
			Description: "Light and flavorful fish tacos with a tangy slaw.",
			Image:       model.AssetImage("240_F_232418936.jpg"),
			CategoryID:  "3", // Main Dishes
			PrepTime:    20,
			CookTime:    15,
			Servings:    4,
			Difficulty:  model.DifficultyMedium,
			Ingredients: []model.Ingredient{
				{Name: "White fish fillets", Quantity: 1, Unit: "lb"},
				{Name: "Corn tortillas", Quantity: 8, Unit: "count"},
				{Name: "Cabbage", Quantity: 0.5, Unit: "head"},
				{Name: "Carrots", Quantity: 2, Unit: "medium"},
				{Name: "Lime", Quantity: 1, Unit: "whole"},
				{Name: "Cilantro", Quantity: 0.25, Unit: "cup"},
				{Name: "Sour cream", Quantity: 0.25, Unit: "cup"},
				{Name: "Chipotle powder", Quantity: 1, Unit: "tsp"},
				{Name: "Olive oil", Quantity: 1, Unit: "tbsp"},
				{Name: "Salt", Quantity: 0.5, Unit: "tsp"},
				{Name: "Black pepper", Quantity: 0.25, Unit: "tsp"},
			},
			Instructions: []model.Instruction{
				{Text: "Preheat oven to 400°F (200°C)."},
				{Text: "Season fish with chipotle powder, salt, and pepper."},
				{Text: "Heat olive oil in a skillet over medium-high heat."},
				{Text: "Cook fish for 4-5 minutes per side until flaky."},
				{Text: "Shred cabbage and julienne carrots."},
				{Text: "Mix cabbage, carrots, lime juice, and cilantro for slaw."},
				{Text: "Warm tortillas in oven or dry skillet."},
				{Text: "Assemble tacos with fish, slaw, and a dollop of sour cream."},
			},
			Nutrition: model.Nutrition{Calories: 290, Protein: 25, Carbs: 18, Fat: 14},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{},
			Likes:     48,
		},
		{
			Name:        "Berry Parfait",
			Description: "Layers of yogurt, granola, and fresh berries for a healthy breakfast.",
			Image:       model.AssetImage("240_F_551829600.jpg"),
			CategoryID:  "1", // Breakfast
			PrepTime:    10,
			CookTime:    0,
			Servings:    2,
			Difficulty:  model.DifficultyEasy,
			Ingredients: []model.Ingredient{
				{Name: "Greek yogurt", Quantity: 1, Unit: "cup"},
				{Name: "Granola", Quantity: 0.5, Unit: "cup"},
				{Name: "Mixed berries", Quantity: 1, Unit: "cup"},
				{Name: "Honey", Quantity: 1, Unit: "tbsp"},
				{Name: "Mint leaves", Quantity: 4, Unit: "leaves"},
			},
			Instructions: []model.Instruction{
				{Text: "Layer yogurt, granola, and berries in glasses."},
				{Text: "Repeat layers."},
				{Text: "Drizzle with honey."},
				{Text: "Garnish with mint leaves."},
				{Text: "Serve immediately."},
			},
			Nutrition: model.Nutrition{Calories: 220, Protein: 12, Carbs: 30, Fat: 6},
			OwnerID:   model.SampleUserID,
			Dietary:   []string{"Vegetarian", "Gluten-Free"},
			Likes:     36,
		},
	}
}
