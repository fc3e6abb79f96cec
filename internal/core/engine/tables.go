package engine

// 規則引擎的靜態資料表
// 程式啟動時載入一次，之後只讀不寫

// 分類器詞表：大小寫不敏感的子字串比對
// 注意："eggplant" 會因包含 "egg" 被判為蛋白質，這是已知的比對特性，
// 為了與既有行為相容而保留
var (
	proteinTerms = []string{
		"chicken", "beef", "pork", "lamb", "duck", "turkey", "bacon",
		"sausage", "ham", "fish", "salmon", "tuna", "shrimp", "prawn",
		"crab", "egg", "tofu", "paneer", "tempeh", "lentil", "chickpea",
	}
	vegetableTerms = []string{
		"tomato", "onion", "pepper", "carrot", "broccoli", "spinach",
		"potato", "cauliflower", "cabbage", "zucchini", "mushroom",
		"peas", "corn", "eggplant", "lettuce", "cucumber", "kale",
		"celery", "asparagus", "green bean", "okra",
	}
	grainTerms = []string{
		"rice", "pasta", "noodle", "spaghetti", "macaroni", "fettuccine",
		"bread", "flour", "maida", "dough", "quinoa", "oat", "barley",
		"couscous", "tortilla", "wheat",
	}
	spiceTerms = []string{
		"cumin", "coriander", "turmeric", "paprika", "cinnamon", "basil",
		"oregano", "thyme", "rosemary", "cilantro", "parsley", "ginger",
		"chili", "masala", "cardamom", "clove", "nutmeg", "saffron",
		"mint", "dill", "salt", "pepper",
	}
)

// 類型推斷的關鍵字組
var (
	riceKeywords  = []string{"rice"}
	pastaKeywords = []string{"pasta", "noodle", "spaghetti", "macaroni", "fettuccine"}
	soupKeywords  = []string{"broth", "stock", "soup"}
	breadKeywords = []string{"bread", "dough", "flour", "maida"}
)

// 各菜系的菜名對照表
var (
	riceDishByCuisine = map[string]string{
		"indian":   "biryani",
		"chinese":  "fried rice",
		"japanese": "rice bowl",
		"mexican":  "rice bowl",
		"italian":  "risotto",
	}
	noodleDishByCuisine = map[string]string{
		"italian":  "pasta",
		"chinese":  "lo mein",
		"japanese": "ramen",
	}
	soupDishByCuisine = map[string]string{
		"italian":  "minestrone",
		"indian":   "curry soup",
		"chinese":  "egg drop soup",
		"japanese": "miso soup",
		"mexican":  "tortilla soup",
		"american": "chowder",
	}
	breadDishByCuisine = map[string]string{
		"indian":   "naan",
		"mexican":  "tortilla",
		"american": "sandwich",
	}
	vegetableDishByCuisine = map[string]string{
		"italian":  "primavera",
		"indian":   "sabzi",
		"chinese":  "vegetable stir-fry",
		"japanese": "tempura",
		"mexican":  "veggie fajitas",
		"american": "roasted vegetables",
	}
	appetizerByCuisine = map[string]string{
		"italian":  "bruschetta",
		"indian":   "chaat",
		"chinese":  "spring rolls",
		"japanese": "edamame",
		"mexican":  "salsa",
		"american": "dip",
	}
)

// 卡路里估算：每種菜型的基準值，未列出者用 defaultCalories
const (
	defaultCalories = 400
	caloriesFloor   = 150
)

var baseCaloriesByType = map[string]int{
	"biryani":            550,
	"fried rice":         500,
	"rice bowl":          480,
	"rice casserole":     520,
	"rice dish":          450,
	"risotto":            500,
	"pasta":              480,
	"lo mein":            510,
	"ramen":              460,
	"mac and cheese":     550,
	"noodle dish":        470,
	"minestrone":         280,
	"curry soup":         320,
	"egg drop soup":      220,
	"miso soup":          200,
	"tortilla soup":      300,
	"chowder":            380,
	"soup":               300,
	"pizza":              600,
	"flatbread":          400,
	"naan":               350,
	"tortilla":           320,
	"sandwich":           450,
	"bread dish":         380,
	"curry":              450,
	"masala":             420,
	"stir-fry":           380,
	"roast":              440,
	"sauté":              400,
	"taco filling":       380,
	"teriyaki":           420,
	"grill":              450,
	"main dish":          430,
	"primavera":          320,
	"sabzi":              280,
	"vegetable stir-fry": 250,
	"tempura":            350,
	"veggie fajitas":     300,
	"roasted vegetables": 260,
	"vegetable dish":     280,
	"bruschetta":         220,
	"chaat":              250,
	"spring rolls":       280,
	"edamame":            180,
	"salsa":              150,
	"dip":                230,
	"appetizer":          220,
}

// 卡路里修正用的詞組
var (
	leanProteinTerms  = []string{"chicken breast", "fish", "egg white", "tofu", "shrimp"}
	fattyProteinTerms = []string{"beef", "pork", "lamb", "duck", "bacon", "sausage"}
	dairyFatTerms     = []string{"cream", "butter", "cheese", "ghee", "oil", "mayonnaise"}
	sweetTerms        = []string{"sugar", "honey", "syrup", "chocolate", "caramel"}
)

// 烹飪時間：每種菜型的基準分鐘數，未列出者用 defaultCookMinutes
const defaultCookMinutes = 30

var baseMinutesByType = map[string]int{
	"biryani":            60,
	"fried rice":         20,
	"rice bowl":          30,
	"rice casserole":     55,
	"rice dish":          35,
	"risotto":            40,
	"pasta":              25,
	"lo mein":            20,
	"ramen":              35,
	"mac and cheese":     25,
	"noodle dish":        25,
	"minestrone":         40,
	"curry soup":         40,
	"egg drop soup":      20,
	"miso soup":          15,
	"tortilla soup":      35,
	"chowder":            45,
	"soup":               40,
	"pizza":              30,
	"flatbread":          25,
	"naan":               30,
	"tortilla":           20,
	"sandwich":           15,
	"bread dish":         30,
	"curry":              45,
	"masala":             40,
	"stir-fry":           15,
	"roast":              50,
	"sauté":              20,
	"taco filling":       25,
	"teriyaki":           25,
	"grill":              25,
	"main dish":          35,
	"primavera":          25,
	"sabzi":              30,
	"vegetable stir-fry": 15,
	"tempura":            30,
	"veggie fajitas":     20,
	"roasted vegetables": 35,
	"vegetable dish":     25,
	"bruschetta":         15,
	"chaat":              15,
	"spring rolls":       30,
	"edamame":            10,
	"salsa":              10,
	"dip":                15,
	"appetizer":          20,
}

// 菜型名稱本身已含米飯概念者，加米不再追加時間
var riceTypeLabels = map[string]bool{
	"biryani":        true,
	"fried rice":     true,
	"rice bowl":      true,
	"rice casserole": true,
	"rice dish":      true,
	"risotto":        true,
}

// supportList 各菜系的補充食材
type supportList struct {
	base   []string            // 該菜系固定補充
	byType map[string][]string // 依推斷菜型追加
}

var supportByCuisine = map[string]supportList{
	"indian": {
		base: []string{"cumin", "coriander", "turmeric", "garam masala", "vegetable oil"},
		byType: map[string][]string{
			"curry":   {"onion", "garlic", "ginger", "tomatoes"},
			"biryani": {"saffron", "yogurt", "fried onions", "mint leaves"},
		},
	},
	"chinese": {
		base: []string{"soy sauce", "sesame oil", "garlic", "ginger", "scallions"},
		byType: map[string][]string{
			"stir-fry":   {"cornstarch", "rice vinegar"},
			"fried rice": {"eggs", "green peas"},
		},
	},
	"italian": {
		base: []string{"olive oil", "garlic", "basil", "oregano"},
		byType: map[string][]string{
			"pasta": {"parmesan cheese", "tomatoes"},
			"pizza": {"mozzarella cheese", "tomato sauce"},
		},
	},
	"mexican": {
		base: []string{"cumin", "chili powder", "lime", "cilantro", "vegetable oil"},
		byType: map[string][]string{
			"taco filling": {"tortillas", "onion"},
		},
	},
	"japanese": {
		base: []string{"soy sauce", "mirin", "ginger", "sesame seeds"},
		byType: map[string][]string{
			"teriyaki": {"brown sugar", "garlic"},
		},
	},
	"american": {
		base: []string{"butter", "garlic powder", "onion powder", "vegetable oil"},
		byType: map[string][]string{
			"grill": {"paprika", "brown sugar"},
		},
	},
}

// 指令合成時視為香料/基底、不當主料點名的食材
var stapleTerms = []string{
	"salt", "pepper", "oil", "butter", "ghee", "garlic", "ginger",
	"soy sauce", "sesame", "mirin", "cumin", "coriander", "turmeric",
	"garam masala", "chili powder", "paprika", "oregano", "basil",
	"lime", "cilantro", "scallion", "onion powder", "garlic powder",
	"vinegar", "cornstarch", "sugar", "saffron", "mint",
}

// 每個菜系的示意圖，依食譜序位輪流取用
var foodImagesByCuisine = map[string][]string{
	"italian": {
		"https://images.unsplash.com/photo-1551183053-bf91a1d81141?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1579349443343-73da56a71a20?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	},
	"indian": {
		"https://images.unsplash.com/photo-1534939561126-855b8675edd7?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1505253758473-96b7015fcd40?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1565557623262-b51c2513a641?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	},
	"chinese": {
		"https://images.unsplash.com/photo-1563245372-f21724e3856d?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1582878826629-29b7ad1cdc43?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1557872943-16a5ac26437e?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	},
	"japanese": {
		"https://images.unsplash.com/photo-1579871494447-9811cf80d66c?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1557872943-16a5ac26437e?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1617196035154-421e3b3ab46e?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	},
	"american": {
		"https://images.unsplash.com/photo-1550317138-10000687a72b?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1576026756048-4f0e2b808858?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1546549032-9571cd6b27df?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	},
	"mexican": {
		"https://images.unsplash.com/photo-1599974579688-8dbdd335c77f?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1613514785940-daed07799d9b?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		"https://images.unsplash.com/photo-1640389576537-5915ad736258?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	},
}

// 找不到對應菜系時用的預設圖
var defaultFoodImages = []string{
	"https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	"https://images.unsplash.com/photo-1546069901-ba9599a7e63c?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
	"https://images.unsplash.com/photo-1565958011703-44f9829ba187?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
}

// 飲食偏好字串的同義詞對照（完全比對）
var dietarySynonyms = map[string][]string{
	"vegetarian": {"vegetarian"},
	"vegan":      {"vegan"},
	"glutenFree": {"glutenfree", "gluten-free", "gluten free"},
	"lowCarb":    {"lowcarb", "low-carb", "low carb"},
	"dairyFree":  {"dairyfree", "dairy-free", "dairy free", "lactose-free"},
	"keto":       {"keto", "ketogenic"},
}

// 推斷飲食標記用的詞組
var (
	meatTerms  = []string{"chicken", "beef", "pork", "lamb", "duck", "turkey", "bacon", "sausage", "ham", "fish", "salmon", "tuna", "shrimp", "prawn", "crab"}
	dairyTerms = []string{"milk", "cream", "butter", "cheese", "ghee", "yogurt", "mayonnaise"}
	glutenFull = []string{"pasta", "noodle", "spaghetti", "macaroni", "fettuccine", "bread", "flour", "maida", "dough", "couscous", "wheat", "soy sauce", "tortilla", "barley"}
)
