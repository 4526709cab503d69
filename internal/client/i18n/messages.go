package i18n

// Message keys. The catalog maps each to an English and a Turkish string.
const (
	Home                          = "home"
	SignUp                        = "signUp"
	Login                         = "login"
	Logout                        = "logout"
	MyProfile                     = "myProfile"
	Username                      = "username"
	Email                         = "email"
	Password                      = "password"
	PasswordRepeat                = "passwordRepeat"
	PasswordMismatchValidation    = "passwordMismatchValidation"
	AccountActivationNotification = "accountActivationNotification"
	AccountActivationSuccess      = "accountActivationSuccess"
	AccountActivationFailure      = "accountActivationFailure"
	LoginFailure                  = "loginFailure"
	ConnectionFailure             = "connectionFailure"
	UserNotFound                  = "userNotFound"
	Users                         = "users"
	NextPage                      = "nextPage"
	PreviousPage                  = "previousPage"
	Loading                       = "loading"
	Welcome                       = "welcome"
	NotLoggedIn                   = "notLoggedIn"
)

var english = map[string]string{
	Home:                          "Home",
	SignUp:                        "Sign Up",
	Login:                         "Login",
	Logout:                        "Logout",
	MyProfile:                     "My Profile",
	Username:                      "Username",
	Email:                         "E-mail",
	Password:                      "Password",
	PasswordRepeat:                "Password Repeat",
	PasswordMismatchValidation:    "Password mismatch",
	AccountActivationNotification: "Please check your e-mail to activate your account",
	AccountActivationSuccess:      "Account is activated",
	AccountActivationFailure:      "Activation failure",
	LoginFailure:                  "Login failed",
	ConnectionFailure:             "Connection failure, please try again",
	UserNotFound:                  "User not found",
	Users:                         "Users",
	NextPage:                      "next >",
	PreviousPage:                  "< previous",
	Loading:                       "Loading...",
	Welcome:                       "Account client (type 'help' for commands)",
	NotLoggedIn:                   "You are not logged in",
}

var turkish = map[string]string{
	Home:                          "Ana Sayfa",
	SignUp:                        "Kayıt Ol",
	Login:                         "Giriş",
	Logout:                        "Çıkış",
	MyProfile:                     "Profilim",
	Username:                      "Kullanıcı Adı",
	Email:                         "E-posta",
	Password:                      "Şifre",
	PasswordRepeat:                "Şifre Tekrarı",
	PasswordMismatchValidation:    "Şifreler eşleşmiyor",
	AccountActivationNotification: "Hesabınızı aktifleştirmek için lütfen e-postanızı kontrol edin",
	AccountActivationSuccess:      "Hesap aktifleştirildi",
	AccountActivationFailure:      "Aktivasyon başarısız",
	LoginFailure:                  "Giriş başarısız",
	ConnectionFailure:             "Bağlantı hatası, lütfen tekrar deneyin",
	UserNotFound:                  "Kullanıcı bulunamadı",
	Users:                         "Kullanıcılar",
	NextPage:                      "sonraki >",
	PreviousPage:                  "< önceki",
	Loading:                       "Yükleniyor...",
	Welcome:                       "Hesap istemcisi (komutlar için 'help' yazın)",
	NotLoggedIn:                   "Giriş yapmadınız",
}
