package docs

// @title 사주 음식 추천 API
// @version 1.0
// @description 사주 오행 기반 음식 추천 채팅 서비스의 사주/일진 계산 API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
