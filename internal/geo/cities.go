package geo

import "github.com/i474232898/weather-estimation/internal/weather"

func city(name, region, district string, lat, lon float64) weather.Place {
	return weather.Place{
		Name:       name,
		Region:     region,
		District:   district,
		Coordinate: weather.Coordinate{Latitude: lat, Longitude: lon},
	}
}

// indianCities is the default reference table of major Indian cities.
var indianCities = []weather.Place{
	city("Visakhapatnam", "Andhra Pradesh", "Visakhapatnam", 17.6868, 83.2185),
	city("Vijayawada", "Andhra Pradesh", "Krishna", 16.5062, 80.6480),
	city("Guntur", "Andhra Pradesh", "Guntur", 16.3067, 80.4365),
	city("Nellore", "Andhra Pradesh", "Nellore", 14.4426, 79.9865),
	city("Kurnool", "Andhra Pradesh", "Kurnool", 15.8281, 78.0373),
	city("Rajahmundry", "Andhra Pradesh", "East Godavari", 17.0005, 81.8040),
	city("Tirupati", "Andhra Pradesh", "Chittoor", 13.6288, 79.4192),
	city("Itanagar", "Arunachal Pradesh", "Papum Pare", 27.0844, 93.6053),
	city("Naharlagun", "Arunachal Pradesh", "Papum Pare", 27.1000, 93.7000),
	city("Guwahati", "Assam", "Kamrup", 26.1445, 91.7362),
	city("Silchar", "Assam", "Cachar", 24.8333, 92.7789),
	city("Dibrugarh", "Assam", "Dibrugarh", 27.4728, 94.9120),
	city("Jorhat", "Assam", "Jorhat", 26.7509, 94.2037),
	city("Nagaon", "Assam", "Nagaon", 26.3440, 92.6789),
	city("Patna", "Bihar", "Patna", 25.5941, 85.1376),
	city("Gaya", "Bihar", "Gaya", 24.7914, 84.9787),
	city("Bhagalpur", "Bihar", "Bhagalpur", 25.2425, 86.9842),
	city("Muzaffarpur", "Bihar", "Muzaffarpur", 26.1197, 85.3910),
	city("Darbhanga", "Bihar", "Darbhanga", 26.1542, 85.8918),
	city("Bihar Sharif", "Bihar", "Nalanda", 25.1979, 85.5240),
	city("Raipur", "Chhattisgarh", "Raipur", 21.2514, 81.6296),
	city("Bhilai", "Chhattisgarh", "Durg", 21.1938, 81.3509),
	city("Korba", "Chhattisgarh", "Korba", 22.3595, 82.7501),
	city("Bilaspur", "Chhattisgarh", "Bilaspur", 22.0797, 82.1391),
	city("Panaji", "Goa", "North Goa", 15.4909, 73.8278),
	city("Margao", "Goa", "South Goa", 15.2993, 73.9626),
	city("Vasco da Gama", "Goa", "South Goa", 15.3955, 73.8313),
	city("Ahmedabad", "Gujarat", "Ahmedabad", 23.0225, 72.5714),
	city("Surat", "Gujarat", "Surat", 21.1702, 72.8311),
	city("Vadodara", "Gujarat", "Vadodara", 22.3072, 73.1812),
	city("Rajkot", "Gujarat", "Rajkot", 22.3039, 70.8022),
	city("Bhavnagar", "Gujarat", "Bhavnagar", 21.7645, 72.1519),
	city("Jamnagar", "Gujarat", "Jamnagar", 22.4707, 70.0577),
	city("Gandhinagar", "Gujarat", "Gandhinagar", 23.2156, 72.6369),
	city("Gurugram", "Haryana", "Gurugram", 28.4595, 77.0266),
	city("Faridabad", "Haryana", "Faridabad", 28.4089, 77.3178),
	city("Panipat", "Haryana", "Panipat", 29.3909, 76.9635),
	city("Ambala", "Haryana", "Ambala", 30.3752, 76.7821),
	city("Yamunanagar", "Haryana", "Yamunanagar", 30.1290, 77.2674),
	city("Rohtak", "Haryana", "Rohtak", 28.8955, 76.6066),
	city("Hisar", "Haryana", "Hisar", 29.1492, 75.7217),
	city("Shimla", "Himachal Pradesh", "Shimla", 31.1048, 77.1734),
	city("Dharamshala", "Himachal Pradesh", "Kangra", 32.2190, 76.3234),
	city("Solan", "Himachal Pradesh", "Solan", 30.9045, 77.0967),
	city("Mandi", "Himachal Pradesh", "Mandi", 31.7084, 76.9319),
	city("Ranchi", "Jharkhand", "Ranchi", 23.3441, 85.3096),
	city("Jamshedpur", "Jharkhand", "East Singhbhum", 22.8046, 86.2029),
	city("Dhanbad", "Jharkhand", "Dhanbad", 23.7957, 86.4304),
	city("Bokaro", "Jharkhand", "Bokaro", 23.6693, 85.9606),
	city("Bengaluru", "Karnataka", "Bengaluru Urban", 12.9716, 77.5946),
	city("Mysuru", "Karnataka", "Mysuru", 12.2958, 76.6394),
	city("Hubli", "Karnataka", "Dharwad", 15.3647, 75.1240),
	city("Mangaluru", "Karnataka", "Dakshina Kannada", 12.9141, 74.8560),
	city("Belgaum", "Karnataka", "Belagavi", 15.8497, 74.4977),
	city("Gulbarga", "Karnataka", "Kalaburagi", 17.3297, 76.8343),
	city("Davangere", "Karnataka", "Davangere", 14.4644, 75.9932),
	city("Thiruvananthapuram", "Kerala", "Thiruvananthapuram", 8.5241, 76.9366),
	city("Kochi", "Kerala", "Ernakulam", 9.9312, 76.2673),
	city("Kozhikode", "Kerala", "Kozhikode", 11.2588, 75.7804),
	city("Thrissur", "Kerala", "Thrissur", 10.5276, 76.2144),
	city("Kollam", "Kerala", "Kollam", 8.8932, 76.6141),
	city("Kannur", "Kerala", "Kannur", 11.8745, 75.3704),
	city("Bhopal", "Madhya Pradesh", "Bhopal", 23.2599, 77.4126),
	city("Indore", "Madhya Pradesh", "Indore", 22.7196, 75.8577),
	city("Gwalior", "Madhya Pradesh", "Gwalior", 26.2183, 78.1828),
	city("Jabalpur", "Madhya Pradesh", "Jabalpur", 23.1815, 79.9864),
	city("Ujjain", "Madhya Pradesh", "Ujjain", 23.1765, 75.7885),
	city("Sagar", "Madhya Pradesh", "Sagar", 23.8388, 78.7378),
	city("Mumbai", "Maharashtra", "Mumbai City", 19.0760, 72.8777),
	city("Pune", "Maharashtra", "Pune", 18.5204, 73.8567),
	city("Nagpur", "Maharashtra", "Nagpur", 21.1458, 79.0882),
	city("Nashik", "Maharashtra", "Nashik", 19.9975, 73.7898),
	city("Aurangabad", "Maharashtra", "Aurangabad", 19.8762, 75.3433),
	city("Solapur", "Maharashtra", "Solapur", 17.6599, 75.9064),
	city("Amravati", "Maharashtra", "Amravati", 20.9374, 77.7796),
	city("Kolhapur", "Maharashtra", "Kolhapur", 16.7050, 74.2433),
	city("Imphal", "Manipur", "Imphal West", 24.8170, 93.9368),
	city("Shillong", "Meghalaya", "East Khasi Hills", 25.5788, 91.8933),
	city("Aizawl", "Mizoram", "Aizawl", 23.7271, 92.7176),
	city("Kohima", "Nagaland", "Kohima", 25.6751, 94.1086),
	city("Dimapur", "Nagaland", "Dimapur", 25.9044, 93.7267),
	city("Bhubaneswar", "Odisha", "Khurda", 20.2961, 85.8245),
	city("Cuttack", "Odisha", "Cuttack", 20.4625, 85.8828),
	city("Rourkela", "Odisha", "Sundargarh", 22.2604, 84.8536),
	city("Berhampur", "Odisha", "Ganjam", 19.3149, 84.7941),
	city("Ludhiana", "Punjab", "Ludhiana", 30.9010, 75.8573),
	city("Amritsar", "Punjab", "Amritsar", 31.6340, 74.8723),
	city("Jalandhar", "Punjab", "Jalandhar", 31.3260, 75.5762),
	city("Patiala", "Punjab", "Patiala", 30.3398, 76.3869),
	city("Bathinda", "Punjab", "Bathinda", 30.2084, 74.9519),
	city("Chandigarh", "Punjab", "Chandigarh", 30.7333, 76.7794),
	city("Jaipur", "Rajasthan", "Jaipur", 26.9124, 75.7873),
	city("Jodhpur", "Rajasthan", "Jodhpur", 26.2389, 73.0243),
	city("Kota", "Rajasthan", "Kota", 25.2138, 75.8648),
	city("Bikaner", "Rajasthan", "Bikaner", 28.0229, 73.3119),
	city("Udaipur", "Rajasthan", "Udaipur", 24.5854, 73.7125),
	city("Ajmer", "Rajasthan", "Ajmer", 26.4499, 74.6399),
	city("Gangtok", "Sikkim", "East Sikkim", 27.3389, 88.6065),
	city("Chennai", "Tamil Nadu", "Chennai", 13.0827, 80.2707),
	city("Coimbatore", "Tamil Nadu", "Coimbatore", 11.0168, 76.9558),
	city("Madurai", "Tamil Nadu", "Madurai", 9.9252, 78.1198),
	city("Tiruchirappalli", "Tamil Nadu", "Tiruchirappalli", 10.7905, 78.7047),
	city("Salem", "Tamil Nadu", "Salem", 11.6643, 78.1460),
	city("Tirunelveli", "Tamil Nadu", "Tirunelveli", 8.7139, 77.7567),
	city("Vellore", "Tamil Nadu", "Vellore", 12.9165, 79.1325),
	city("Hyderabad", "Telangana", "Hyderabad", 17.3850, 78.4867),
	city("Warangal", "Telangana", "Warangal Urban", 17.9689, 79.5941),
	city("Nizamabad", "Telangana", "Nizamabad", 18.6725, 78.0941),
	city("Khammam", "Telangana", "Khammam", 17.2473, 80.1514),
	city("Agartala", "Tripura", "West Tripura", 23.8315, 91.2868),
	city("Lucknow", "Uttar Pradesh", "Lucknow", 26.8467, 80.9462),
	city("Kanpur", "Uttar Pradesh", "Kanpur Nagar", 26.4499, 80.3319),
	city("Ghaziabad", "Uttar Pradesh", "Ghaziabad", 28.6692, 77.4538),
	city("Agra", "Uttar Pradesh", "Agra", 27.1767, 78.0081),
	city("Varanasi", "Uttar Pradesh", "Varanasi", 25.3176, 82.9739),
	city("Meerut", "Uttar Pradesh", "Meerut", 28.9845, 77.7064),
	city("Allahabad", "Uttar Pradesh", "Prayagraj", 25.4358, 81.8463),
	city("Bareilly", "Uttar Pradesh", "Bareilly", 28.3670, 79.4304),
	city("Aligarh", "Uttar Pradesh", "Aligarh", 27.8974, 78.0880),
	city("Moradabad", "Uttar Pradesh", "Moradabad", 28.8386, 78.7733),
	city("Dehradun", "Uttarakhand", "Dehradun", 30.3165, 78.0322),
	city("Haridwar", "Uttarakhand", "Haridwar", 29.9457, 78.1642),
	city("Roorkee", "Uttarakhand", "Haridwar", 29.8543, 77.8880),
	city("Haldwani", "Uttarakhand", "Nainital", 29.2183, 79.5130),
	city("Kolkata", "West Bengal", "Kolkata", 22.5726, 88.3639),
	city("Howrah", "West Bengal", "Howrah", 22.5958, 88.2636),
	city("Durgapur", "West Bengal", "Paschim Bardhaman", 23.4820, 87.3119),
	city("Asansol", "West Bengal", "Paschim Bardhaman", 23.6739, 86.9524),
	city("Siliguri", "West Bengal", "Darjeeling", 26.7271, 88.3953),
	city("New Delhi", "Delhi", "New Delhi", 28.6139, 77.2090),
	city("Delhi", "Delhi", "Delhi", 28.7041, 77.1025),
	city("Puducherry", "Puducherry", "Puducherry", 11.9416, 79.8083),
	city("Port Blair", "Andaman and Nicobar Islands", "South Andaman", 11.6234, 92.7265),
	city("Kavaratti", "Lakshadweep", "Lakshadweep", 10.5669, 72.6420),
	city("Daman", "Dadra and Nagar Haveli and Daman and Diu", "Daman", 20.3974, 72.8328),
	city("Silvassa", "Dadra and Nagar Haveli and Daman and Diu", "Dadra and Nagar Haveli", 20.2738, 73.0140),
	city("Jammu", "Jammu and Kashmir", "Jammu", 32.7266, 74.8570),
	city("Srinagar", "Jammu and Kashmir", "Srinagar", 34.0837, 74.7973),
	city("Leh", "Ladakh", "Leh", 34.1526, 77.5771),
}
