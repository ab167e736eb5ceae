package sheets

// Листы таблицы
const (
	sheetScreens             = "pantallas"
	sheetRates               = "tarifas"
	sheetReservations        = "reservas"
	sheetReservationItems    = "detalle_reserva"
	sheetPreReservations     = "prereservas"
	sheetPreReservationItems = "detalle_prereserva"
	sheetCategories          = "categorias"
	sheetCities              = "ciudades"
)

// Колонки листов
const (
	colScreenID    = "id_pantalla"
	colCylinder    = "cilindro"
	colLabel       = "identificador"
	colRateCode    = "codigo_tarifa"
	colDuration    = "duracion_seg"
	colWeeklyPrice = "precio_semana"

	colReservationID    = "id_reserva"
	colPreReservationID = "id_prereserva"
	colClientID         = "id_cliente"
	colStartDate        = "fecha_inicio"
	colEndDate          = "fecha_fin"
	colStatus           = "estado"
	colCreatedAt        = "fecha_creacion"
	colEmailSent        = "correo_enviado"

	colItemID   = "id_detalle"
	colCategory = "categoria"

	colCategoryID   = "id_categoria"
	colCategoryName = "nombre"
	colCityName     = "nombre_ciudad"
)

// Значения флага correo_enviado
const (
	emailSentYes = "sí"
	emailSentNo  = "no"
)

// preReservationColumns порядок колонок листа prereservas
var preReservationColumns = []string{
	colPreReservationID,
	colClientID,
	colStartDate,
	colEndDate,
	colStatus,
	colCreatedAt,
	colEmailSent,
}
